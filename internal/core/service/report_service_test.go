package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

// stubReportRepo is a map-backed ports.ReportRepository for service tests.
type stubReportRepo struct {
	reports map[string]domain.Report
	nextID  int
	// createErr, when set, fails every Create call.
	createErr error
	creates   int
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]domain.Report), nextID: 1}
}

func (r *stubReportRepo) Create(_ context.Context, report *domain.Report) (*domain.Report, error) {
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *report
	created.ID = fmt.Sprintf("report-%d", r.nextID)
	r.nextID++
	r.reports[created.ID] = created
	out := created
	return &out, nil
}

func (r *stubReportRepo) ListBySubmitter(_ context.Context, userID string) ([]domain.Report, error) {
	out := []domain.Report{}
	for _, rep := range r.reports {
		if rep.SubmittedBy == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *stubReportRepo) ListAll(_ context.Context) ([]domain.Report, error) {
	out := []domain.Report{}
	for _, rep := range r.reports {
		out = append(out, rep)
	}
	return out, nil
}

func (r *stubReportRepo) UpdateReply(_ context.Context, id string, upd ports.ReplyUpdate) (*domain.Report, error) {
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

// stubBlobStore records uploads and deletes for saga assertions.
type stubBlobStore struct {
	uploads   int
	deletes   int
	deletedID string
	uploadErr error
}

func (s *stubBlobStore) Upload(_ context.Context, name, _ string, _ []byte) (string, string, error) {
	s.uploads++
	if s.uploadErr != nil {
		return "", "", s.uploadErr
	}
	id := fmt.Sprintf("blob-%d", s.uploads)
	return id, "https://blobs.example.com/" + name, nil
}

func (s *stubBlobStore) Delete(_ context.Context, id string) error {
	s.deletes++
	s.deletedID = id
	return nil
}

func employeeIdentity() *domain.Identity {
	return &domain.Identity{ID: "user-1", Name: "Jane Doe", Email: "jane@corp.com", Role: domain.RoleEmployee}
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{ID: "user-9", Name: "Admin", Email: "admin@corp.com", Role: domain.RoleAdmin}
}

func validReport() ports.CreateReportInput {
	return ports.CreateReportInput{
		EmployeeName: "Jane Doe",
		EmployeeCode: "EMP-001",
		EmployeeType: "Full-Time",
		Department:   "IT",
		Description:  "The office printer keeps jamming on every job",
		Image:        "https://images.example.com/printer.jpg",
	}
}

func pngDataURI() string {
	payload := base64.StdEncoding.EncodeToString([]byte("not-really-a-png"))
	return "data:image/png;base64," + payload
}

func TestCreateReport(t *testing.T) {
	repo := newStubReportRepo()
	blobs := &stubBlobStore{}
	svc := NewReportService(repo, blobs, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated report id")
	}
	if created.Status != domain.StatusSubmitted {
		t.Errorf("expected status %q, got %q", domain.StatusSubmitted, created.Status)
	}
	if created.SubmittedBy != "user-1" {
		t.Errorf("expected submitted_by user-1, got %q", created.SubmittedBy)
	}
	if created.SubmittedAt.IsZero() {
		t.Error("expected submitted_at to be set")
	}
	if created.ImageURL != "https://images.example.com/printer.jpg" {
		t.Errorf("a plain URL must be persisted untouched, got %q", created.ImageURL)
	}
	if blobs.uploads != 0 {
		t.Errorf("a plain URL must not hit the blob store, got %d uploads", blobs.uploads)
	}
}

func TestCreateReportUnauthorized(t *testing.T) {
	for _, tt := range []struct {
		name string
		id   *domain.Identity
	}{
		{"nil identity", nil},
		{"admin identity", adminIdentity()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubReportRepo()
			blobs := &stubBlobStore{}
			svc := NewReportService(repo, blobs, discardLogger)

			input := validReport()
			input.Image = pngDataURI()

			_, err := svc.Create(context.Background(), input, tt.id)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
			if repo.creates != 0 || blobs.uploads != 0 {
				t.Error("a denied create must not touch any store")
			}
		})
	}
}

func TestCreateReportValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.CreateReportInput)
	}{
		{"missing name", func(in *ports.CreateReportInput) { in.EmployeeName = "" }},
		{"missing employee code", func(in *ports.CreateReportInput) { in.EmployeeCode = "" }},
		{"unknown employee type", func(in *ports.CreateReportInput) { in.EmployeeType = "Volunteer" }},
		{"unknown department", func(in *ports.CreateReportInput) { in.Department = "Marketing" }},
		{"short description", func(in *ports.CreateReportInput) { in.Description = "broken" }},
		{"missing image", func(in *ports.CreateReportInput) { in.Image = "" }},
		{"bogus image reference", func(in *ports.CreateReportInput) { in.Image = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubReportRepo()
			svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

			input := validReport()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input, employeeIdentity())
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if repo.creates != 0 {
				t.Error("invalid input must not reach the store")
			}
		})
	}
}

func TestCreateReportUploadsDataURI(t *testing.T) {
	repo := newStubReportRepo()
	blobs := &stubBlobStore{}
	svc := NewReportService(repo, blobs, discardLogger)

	input := validReport()
	input.Image = pngDataURI()

	created, err := svc.Create(context.Background(), input, employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blobs.uploads != 1 {
		t.Fatalf("expected one upload, got %d", blobs.uploads)
	}
	if !strings.HasPrefix(created.ImageURL, "https://blobs.example.com/") {
		t.Errorf("expected the blob URL to replace the data URI, got %q", created.ImageURL)
	}
	if !strings.HasSuffix(created.ImageURL, ".png") {
		t.Errorf("expected object name with extension from the content type, got %q", created.ImageURL)
	}
}

func TestCreateReportMalformedDataURI(t *testing.T) {
	for _, tt := range []struct {
		name  string
		image string
	}{
		{"no comma", "data:image/png;base64"},
		{"not base64 encoded", "data:image/png,rawbytes"},
		{"bad payload", "data:image/png;base64,%%%%"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReportService(newStubReportRepo(), &stubBlobStore{}, discardLogger)

			input := validReport()
			input.Image = tt.image

			_, err := svc.Create(context.Background(), input, employeeIdentity())
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateReportDeletesBlobWhenStoreFails(t *testing.T) {
	repo := newStubReportRepo()
	repo.createErr = fmt.Errorf("%w: write refused", domain.ErrUpstream)
	blobs := &stubBlobStore{}
	svc := NewReportService(repo, blobs, discardLogger)

	input := validReport()
	input.Image = pngDataURI()

	_, err := svc.Create(context.Background(), input, employeeIdentity())
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if blobs.deletes != 1 {
		t.Fatalf("expected the uploaded blob to be deleted, got %d deletes", blobs.deletes)
	}
	if blobs.deletedID != "blob-1" {
		t.Errorf("expected blob-1 to be deleted, got %q", blobs.deletedID)
	}
}

func TestCreateReportUploadFailure(t *testing.T) {
	repo := newStubReportRepo()
	blobs := &stubBlobStore{uploadErr: fmt.Errorf("%w: bucket gone", domain.ErrUpstream)}
	svc := NewReportService(repo, blobs, discardLogger)

	input := validReport()
	input.Image = pngDataURI()

	_, err := svc.Create(context.Background(), input, employeeIdentity())
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if repo.creates != 0 {
		t.Error("a failed upload must not create a report")
	}
}

func TestListMineScopesToSubmitter(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	alice := &domain.Identity{ID: "user-a", Role: domain.RoleEmployee}
	bob := &domain.Identity{ID: "user-b", Role: domain.RoleEmployee}

	for i, who := range []*domain.Identity{alice, alice, bob} {
		input := validReport()
		input.Description = fmt.Sprintf("report number %d with enough detail", i)
		if _, err := svc.Create(context.Background(), input, who); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	mine, err := svc.ListMine(context.Background(), alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 reports for alice, got %d", len(mine))
	}
	for _, rep := range mine {
		if rep.SubmittedBy != "user-a" {
			t.Errorf("foreign report %q leaked into alice's listing", rep.ID)
		}
	}
}

func TestListMineDeniedReturnsEmpty(t *testing.T) {
	svc := NewReportService(newStubReportRepo(), &stubBlobStore{}, discardLogger)

	for _, id := range []*domain.Identity{nil, adminIdentity()} {
		got, err := svc.ListMine(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected an empty slice, got %v", got)
		}
	}
}

func TestListAll(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	for range [3]int{} {
		if _, err := svc.Create(context.Background(), validReport(), employeeIdentity()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := svc.ListAll(context.Background(), adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 reports, got %d", len(all))
	}

	// Non-admins see nothing, not an error.
	none, err := svc.ListAll(context.Background(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected an empty slice for a non-admin, got %d reports", len(none))
	}
}

func TestReply(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Reply(context.Background(), ports.ReplyInput{
		ReportID: created.ID,
		Reply:    "A technician is on the way.",
		Status:   "In Progress",
	}, adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Reply != "A technician is on the way." {
		t.Errorf("unexpected reply %q", updated.Reply)
	}
	if updated.Status != domain.StatusInProgress {
		t.Errorf("expected status %q, got %q", domain.StatusInProgress, updated.Status)
	}
	if updated.RepliedAt == nil || updated.RepliedAt.IsZero() {
		t.Error("expected replied_at to be set")
	}
}

func TestReplyOverwritesPrevious(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Reply(context.Background(), ports.ReplyInput{
		ReportID: created.ID, Reply: "Looking into it.", Status: "In Progress",
	}, adminIdentity()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	final, err := svc.Reply(context.Background(), ports.ReplyInput{
		ReportID: created.ID, Reply: "Fixed.", Status: "Resolved",
	}, adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if final.Reply != "Fixed." || final.Status != domain.StatusResolved {
		t.Errorf("second reply must win, got reply=%q status=%q", final.Reply, final.Status)
	}
}

func TestReplyUnauthorized(t *testing.T) {
	svc := NewReportService(newStubReportRepo(), &stubBlobStore{}, discardLogger)

	for _, id := range []*domain.Identity{nil, employeeIdentity()} {
		_, err := svc.Reply(context.Background(), ports.ReplyInput{
			ReportID: "report-1", Reply: "nope", Status: "Resolved",
		}, id)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	}
}

func TestReplyValidation(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tt := range []struct {
		name  string
		input ports.ReplyInput
	}{
		{"empty reply", ports.ReplyInput{ReportID: created.ID, Reply: "", Status: "Resolved"}},
		{"unknown status", ports.ReplyInput{ReportID: created.ID, Reply: "done", Status: "Archived"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reply(context.Background(), tt.input, adminIdentity())
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestReplyNotFound(t *testing.T) {
	svc := NewReportService(newStubReportRepo(), &stubBlobStore{}, discardLogger)

	_, err := svc.Reply(context.Background(), ports.ReplyInput{
		ReportID: "report-404", Reply: "hello", Status: "Closed",
	}, adminIdentity())
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}

func TestReplyIdempotent(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := ports.ReplyInput{ReportID: created.ID, Reply: "On it.", Status: "In Progress"}
	first, err := svc.Reply(context.Background(), input, adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Reply(context.Background(), input, adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Reply != second.Reply || first.Status != second.Status {
		t.Errorf("repeating a reply must converge to the same state: %+v vs %+v", first, second)
	}
}

func TestReplyDoesNotTouchSubmissionFields(t *testing.T) {
	repo := newStubReportRepo()
	svc := NewReportService(repo, &stubBlobStore{}, discardLogger)

	created, err := svc.Create(context.Background(), validReport(), employeeIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	submittedAt := created.SubmittedAt

	time.Sleep(time.Millisecond)
	updated, err := svc.Reply(context.Background(), ports.ReplyInput{
		ReportID: created.ID, Reply: "ack", Status: "Closed",
	}, adminIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SubmittedBy != created.SubmittedBy || !updated.SubmittedAt.Equal(submittedAt) {
		t.Error("a reply must not rewrite the submission fields")
	}
	if updated.Description != created.Description {
		t.Error("a reply must not rewrite the description")
	}
}
