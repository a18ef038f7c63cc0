package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

const minDescriptionLen = 10

// ReportService implements the report lifecycle: creation by employees,
// role-scoped listing, and manager replies.
type ReportService struct {
	repo   ports.ReportRepository
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, blobs ports.BlobStore, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, blobs: blobs, logger: logger}
}

// Create validates and persists a new report on behalf of requester.
// The gate check runs before anything else, so an unauthorized call causes
// no blob or document write. When the image arrives as a data URI its bytes
// are uploaded to the blob store first and the retrieval URL is persisted
// instead; if the subsequent metadata write fails the uploaded blob is
// deleted as compensating cleanup.
func (s *ReportService) Create(ctx context.Context, input ports.CreateReportInput, requester *domain.Identity) (*domain.Report, error) {
	if !CanCreateReport(requester) {
		return nil, domain.ErrUnauthorized
	}
	if err := validateReport(input); err != nil {
		return nil, err
	}

	imageURL := input.Image
	blobID := ""
	if strings.HasPrefix(input.Image, "data:") {
		contentType, data, err := parseDataURI(input.Image)
		if err != nil {
			return nil, err
		}
		blobID, imageURL, err = s.blobs.Upload(ctx, imageName(contentType), contentType, data)
		if err != nil {
			s.logger.Error().Err(err).Msg("image upload failed")
			return nil, err
		}
	}

	report := &domain.Report{
		EmployeeName: input.EmployeeName,
		EmployeeCode: input.EmployeeCode,
		EmployeeType: domain.EmployeeType(input.EmployeeType),
		Department:   input.Department,
		Description:  input.Description,
		ImageURL:     imageURL,
		Status:       domain.StatusSubmitted,
		SubmittedAt:  time.Now().UTC(),
		SubmittedBy:  requester.ID,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store report")
		if blobID != "" {
			if delErr := s.blobs.Delete(ctx, blobID); delErr != nil {
				s.logger.Warn().Err(delErr).Str("blob_id", blobID).Msg("orphaned blob left behind")
			}
		}
		return nil, err
	}

	s.logger.Info().
		Str("report_id", created.ID).
		Str("department", created.Department).
		Str("submitted_by", created.SubmittedBy).
		Msg("report submitted")

	return created, nil
}

// ListMine returns the requester's own reports, newest first. A denied
// requester gets an empty slice, not an error, keeping the UI in control of
// messaging.
func (s *ReportService) ListMine(ctx context.Context, requester *domain.Identity) ([]domain.Report, error) {
	if !CanListOwnReports(requester) {
		return []domain.Report{}, nil
	}
	return s.repo.ListBySubmitter(ctx, requester.ID)
}

// ListAll returns every report, newest first. Non-admin requesters get an
// empty slice.
func (s *ReportService) ListAll(ctx context.Context, requester *domain.Identity) ([]domain.Report, error) {
	if !CanListAllReports(requester) {
		return []domain.Report{}, nil
	}
	return s.repo.ListAll(ctx)
}

// Reply applies a manager reply: sets the reply text, the new status, and
// repliedAt. A second reply silently overwrites the first.
func (s *ReportService) Reply(ctx context.Context, input ports.ReplyInput, requester *domain.Identity) (*domain.Report, error) {
	if !CanReply(requester) {
		return nil, domain.ErrUnauthorized
	}
	if input.Reply == "" {
		return nil, invalidf("reply message is required")
	}
	status := domain.ReportStatus(input.Status)
	if !status.Valid() {
		return nil, invalidf("unknown status %q", input.Status)
	}

	updated, err := s.repo.UpdateReply(ctx, input.ReportID, ports.ReplyUpdate{
		Reply:     input.Reply,
		Status:    status,
		RepliedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("report_id", updated.ID).Str("status", string(status)).Msg("reply sent")
	return updated, nil
}

func validateReport(input ports.CreateReportInput) error {
	switch {
	case input.EmployeeName == "":
		return invalidf("employee name is required")
	case input.EmployeeCode == "":
		return invalidf("employee code is required")
	case !domain.EmployeeType(input.EmployeeType).Valid():
		return invalidf("unknown employee type %q", input.EmployeeType)
	case !domain.ValidDepartment(input.Department):
		return invalidf("unknown department %q", input.Department)
	case len(input.Description) < minDescriptionLen:
		return invalidf("description must be at least %d characters", minDescriptionLen)
	case input.Image == "":
		return invalidf("an image URL or data URI is required")
	}
	if !strings.HasPrefix(input.Image, "data:") {
		if _, err := url.ParseRequestURI(input.Image); err != nil {
			return invalidf("image must be a valid URL or data URI")
		}
	}
	return nil
}

// parseDataURI splits a "data:<mime>;base64,<payload>" string into its
// content type and decoded bytes.
func parseDataURI(uri string) (contentType string, data []byte, err error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, invalidf("malformed image data URI")
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if contentType == meta {
		return "", nil, invalidf("image data URI must be base64 encoded")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, invalidf("image data URI payload is not valid base64")
	}
	return contentType, data, nil
}

// imageName generates a unique object name for an uploaded report image.
func imageName(contentType string) string {
	ext := "bin"
	if _, sub, ok := strings.Cut(contentType, "/"); ok && sub != "" {
		ext = sub
	}
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("report-%d.%s", time.Now().UnixNano(), ext)
	}
	return fmt.Sprintf("report-%x.%s", b, ext)
}
