package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issuetrack/reporting-system/internal/api/metrics"
	"github.com/issuetrack/reporting-system/internal/api/middleware"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for the report lifecycle.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Create handles POST /v1/reports.
//
// @Summary      Submit an issue report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report details"
// @Success      201   {object}  reportResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	report, err := h.service.Create(c.Request().Context(), ports.CreateReportInput{
		EmployeeName: req.EmployeeName,
		EmployeeCode: req.EmployeeCode,
		EmployeeType: req.EmployeeType,
		Department:   req.Department,
		Description:  req.Description,
		Image:        req.Image,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.WithLabelValues(report.Department).Inc()
	return c.JSON(http.StatusCreated, toReportResponse(report))
}

// ListMine handles GET /v1/reports/mine — the requesting employee's own
// reports, newest first.
//
// @Summary      List my reports
// @Tags         reports
// @Produce      json
// @Success      200  {object}  listReportsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/reports/mine [get]
func (h *ReportHandler) ListMine(c echo.Context) error {
	reports, err := h.service.ListMine(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(reports))
}

// ListAll handles GET /v1/reports — the admin dashboard listing.
//
// @Summary      List all reports
// @Tags         reports
// @Produce      json
// @Success      200  {object}  listReportsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/reports [get]
func (h *ReportHandler) ListAll(c echo.Context) error {
	reports, err := h.service.ListAll(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(reports))
}

// Reply handles POST /v1/reports/:id/reply.
//
// @Summary      Reply to a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Report id"
// @Param        body  body      replyRequest  true  "Reply and new status"
// @Success      200   {object}  reportResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/reports/{id}/reply [post]
func (h *ReportHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	report, err := h.service.Reply(c.Request().Context(), ports.ReplyInput{
		ReportID: c.Param("id"),
		Reply:    req.Reply,
		Status:   req.Status,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	metrics.RepliesTotal.WithLabelValues(string(report.Status)).Inc()
	return c.JSON(http.StatusOK, toReportResponse(report))
}
