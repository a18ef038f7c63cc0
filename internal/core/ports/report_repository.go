package ports

import (
	"context"
	"time"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// ReplyUpdate carries the fields a manager reply writes to a report.
// Last write wins: there is no optimistic-concurrency check.
type ReplyUpdate struct {
	Reply     string
	Status    domain.ReportStatus
	RepliedAt time.Time
}

// ReportRepository defines persistence for issue reports. List results are
// always ordered newest-first by submission time.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	// ListBySubmitter returns every report whose SubmittedBy equals userID.
	ListBySubmitter(ctx context.Context, userID string) ([]domain.Report, error)
	ListAll(ctx context.Context) ([]domain.Report, error)
	// UpdateReply applies a manager reply. Returns domain.ErrReportNotFound
	// when no report has the id.
	UpdateReply(ctx context.Context, id string, upd ReplyUpdate) (*domain.Report, error)
}
