package handler

import "github.com/issuetrack/reporting-system/internal/core/domain"

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:           r.ID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		EmployeeType: string(r.EmployeeType),
		Department:   r.Department,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Status:       string(r.Status),
		SubmittedAt:  r.SubmittedAt.UTC(),
		SubmittedBy:  r.SubmittedBy,
		Reply:        r.Reply,
		RepliedAt:    r.RepliedAt,
	}
}

func toListResponse(reports []domain.Report) listReportsResponse {
	items := make([]reportResponse, len(reports))
	for i := range reports {
		items[i] = toReportResponse(&reports[i])
	}
	return listReportsResponse{Data: items}
}
