package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issuetrack/reporting-system/internal/api/metrics"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

// SuggestHandler serves department suggestions for a draft report.
type SuggestHandler struct {
	suggester ports.DepartmentSuggester
}

func NewSuggestHandler(suggester ports.DepartmentSuggester) *SuggestHandler {
	return &SuggestHandler{suggester: suggester}
}

// Suggest handles POST /v1/departments/suggest. Any authenticated identity
// may call it.
//
// @Summary      Suggest the department for an issue
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      suggestDepartmentRequest  true  "Issue description and optional image"
// @Success      200   {object}  suggestDepartmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/departments/suggest [post]
func (h *SuggestHandler) Suggest(c echo.Context) error {
	var req suggestDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	suggestion, err := h.suggester.Suggest(c.Request().Context(), req.Description, req.Image)
	if err != nil {
		return err
	}

	metrics.SuggestionsTotal.WithLabelValues(suggestion).Inc()
	return c.JSON(http.StatusOK, suggestDepartmentResponse{Suggestion: suggestion})
}
