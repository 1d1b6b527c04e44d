// Package datasetroute exposes the dataset load endpoints
package datasetroute

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stevenslegal/saksmatch/internal/repositories/dataset"
)

// Handler handles dataset loads
type Handler struct {
	log  *zap.SugaredLogger
	repo *dataset.Repository
}

// NewHandler creates a new dataset handler
func NewHandler(log *zap.SugaredLogger, repo *dataset.Repository) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{log: log, repo: repo}
}

// Register registers dataset routes
func (h *Handler) Register(g *echo.Group) {
	g.POST("/firms", h.LoadFirms)
	g.POST("/cases", h.LoadCases)
	g.GET("", h.Status)
}

// LoadRequest is the request body for loading a dataset. Content carries the
// raw JSON payload as pasted or uploaded; it is parsed leniently, so a
// malformed payload loads an empty dataset rather than failing.
type LoadRequest struct {
	Content string `json:"content" validate:"required"`
}

// LoadResponse reports the outcome of a dataset load.
type LoadResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// LoadFirms replaces the firm dataset
func (h *Handler) LoadFirms(c echo.Context) error {
	var req LoadRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	set := h.repo.SetFirms(req.Content)
	return c.JSON(http.StatusOK, LoadResponse{ID: set.ID.String(), Count: len(set.Names)})
}

// LoadCases replaces the case dataset
func (h *Handler) LoadCases(c echo.Context) error {
	var req LoadRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	set := h.repo.SetCases(req.Content)
	return c.JSON(http.StatusOK, LoadResponse{ID: set.ID.String(), Count: len(set.Records)})
}

// StatusResponse describes the currently loaded datasets.
type StatusResponse struct {
	FirmSetID string `json:"firm_set_id,omitempty"`
	Firms     int    `json:"firms"`
	CaseSetID string `json:"case_set_id,omitempty"`
	Cases     int    `json:"cases"`
}

// Status reports the loaded dataset sizes
func (h *Handler) Status(c echo.Context) error {
	firms, cases := h.repo.Snapshot()

	resp := StatusResponse{Firms: len(firms.Names), Cases: len(cases.Records)}
	if len(firms.Names) > 0 {
		resp.FirmSetID = firms.ID.String()
	}
	if len(cases.Records) > 0 {
		resp.CaseSetID = cases.ID.String()
	}
	return c.JSON(http.StatusOK, resp)
}
