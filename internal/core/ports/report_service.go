package ports

import (
	"context"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// CreateReportInput carries all data needed to submit a new report.
// Image may be a retrieval URL or a base64 data URI; data URIs are uploaded
// to the blob store and replaced by the resulting URL before persistence.
type CreateReportInput struct {
	EmployeeName string
	EmployeeCode string
	EmployeeType string
	Department   string
	Description  string
	Image        string
}

// ReplyInput carries a manager reply to an existing report.
type ReplyInput struct {
	ReportID string
	Reply    string
	Status   string
}

// ReportService defines the report lifecycle use cases. Every operation
// checks the access-control gate first and fails closed: mutations return
// domain.ErrUnauthorized, list operations return an empty slice.
type ReportService interface {
	Create(ctx context.Context, input CreateReportInput, requester *domain.Identity) (*domain.Report, error)
	ListMine(ctx context.Context, requester *domain.Identity) ([]domain.Report, error)
	ListAll(ctx context.Context, requester *domain.Identity) ([]domain.Report, error)
	Reply(ctx context.Context, input ReplyInput, requester *domain.Identity) (*domain.Report, error)
}
