// Package launch exposes the external search link builder
package launch

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/stevenslegal/saksmatch/pkg/launcher"
)

// Handler handles launch link requests
type Handler struct{}

// NewHandler creates a new launch handler
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers launch routes
func (h *Handler) Register(g *echo.Group) {
	g.GET("", h.Links)
}

// Links builds the external search links for the q query parameter
func (h *Handler) Links(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "q query parameter is required")
	}
	return c.JSON(http.StatusOK, launcher.Links(q))
}
