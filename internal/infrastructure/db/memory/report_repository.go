package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

// ReportRepository is the in-memory fallback for ports.ReportRepository.
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
	nextID  int
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{reports: make(map[string]domain.Report), nextID: 1}
}

func (r *ReportRepository) Create(_ context.Context, report *domain.Report) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *report
	created.ID = "report-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.reports[created.ID] = created

	out := created
	return &out, nil
}

func (r *ReportRepository) ListBySubmitter(_ context.Context, userID string) ([]domain.Report, error) {
	return r.list(func(rep *domain.Report) bool { return rep.SubmittedBy == userID }), nil
}

func (r *ReportRepository) ListAll(_ context.Context) ([]domain.Report, error) {
	return r.list(func(*domain.Report) bool { return true }), nil
}

func (r *ReportRepository) UpdateReply(_ context.Context, id string, upd ports.ReplyUpdate) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}

	report.Reply = upd.Reply
	report.Status = upd.Status
	repliedAt := upd.RepliedAt
	report.RepliedAt = &repliedAt
	r.reports[id] = report

	out := report
	return &out, nil
}

// list returns matching reports newest-first, mirroring the ordering the
// external store query applies.
func (r *ReportRepository) list(match func(*domain.Report) bool) []domain.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Report{}
	for _, rep := range r.reports {
		if match(&rep) {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}
