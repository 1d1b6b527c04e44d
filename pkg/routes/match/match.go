// Package match exposes the matching endpoint
package match

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stevenslegal/saksmatch/config"
	"github.com/stevenslegal/saksmatch/pkg/matching"
	"github.com/stevenslegal/saksmatch/pkg/models"
)

// Handler handles match requests
type Handler struct {
	log *zap.SugaredLogger
	svc *matching.Service
	cfg *config.Config
}

// NewHandler creates a new match handler
func NewHandler(log *zap.SugaredLogger, svc *matching.Service, cfg *config.Config) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{log: log, svc: svc, cfg: cfg}
}

// Register registers match routes
func (h *Handler) Register(g *echo.Group) {
	g.POST("", h.Match)
}

// Request is the request body for a match pass. Omitted fields fall back to
// the configured defaults, so an empty body runs the default pass.
type Request struct {
	Threshold      *float64 `json:"threshold,omitempty" validate:"omitempty,min=0,max=1"`
	OnlyCourt      *bool    `json:"only_court,omitempty"`
	StrictLastName *bool    `json:"strict_last_name,omitempty"`
	Keywords       string   `json:"keywords,omitempty"`
}

// Response wraps the match results. KeywordMatches is truncated to the
// configured display limit; KeywordMatchTotal carries the full count.
type Response struct {
	Firms             []string             `json:"firms"`
	CaseTexts         []string             `json:"case_texts"`
	Matches           []models.MatchResult `json:"matches"`
	Keywords          []models.Keyword     `json:"keywords"`
	KeywordMatches    []models.CaseRecord  `json:"keyword_matches"`
	KeywordMatchTotal int                  `json:"keyword_match_total"`
	Scorer            string               `json:"scorer"`
}

// Match runs a full match pass over the loaded datasets
func (h *Handler) Match(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "threshold must be between 0 and 1")
	}

	controls := matching.Controls{
		Threshold:      h.cfg.MatchThreshold,
		OnlyCourt:      h.cfg.MatchOnlyCourt,
		StrictLastName: h.cfg.MatchStrictLastName,
		KeywordsRaw:    req.Keywords,
	}
	if req.Threshold != nil {
		controls.Threshold = *req.Threshold
	}
	if req.OnlyCourt != nil {
		controls.OnlyCourt = *req.OnlyCourt
	}
	if req.StrictLastName != nil {
		controls.StrictLastName = *req.StrictLastName
	}

	results := h.svc.Results(c.Request().Context(), controls)
	h.log.Debugw("match request served",
		"firms", len(results.Firms),
		"matched", len(results.Matches),
		"scorer", results.Scorer,
	)

	resp := Response{
		Firms:             results.Firms,
		CaseTexts:         results.CaseTexts,
		Matches:           results.Matches,
		Keywords:          results.Keywords,
		KeywordMatches:    results.KeywordMatches,
		KeywordMatchTotal: len(results.KeywordMatches),
		Scorer:            results.Scorer,
	}
	if limit := h.cfg.KeywordDisplayLimit; limit > 0 && len(resp.KeywordMatches) > limit {
		resp.KeywordMatches = resp.KeywordMatches[:limit]
	}

	return c.JSON(http.StatusOK, resp)
}
