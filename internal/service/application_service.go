package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/mailer"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/validation"
	"github.com/rs/zerolog"
)

// applicationService is the concrete implementation of ApplicationService
type applicationService struct {
	blobs  blobstore.BlobStore
	sender mailer.Sender
	log    zerolog.Logger
}

func newApplicationService(blobs blobstore.BlobStore, sender mailer.Sender, log zerolog.Logger) ApplicationService {
	return &applicationService{
		blobs:  blobs,
		sender: sender,
		log:    log.With().Str("service", "application").Logger(),
	}
}

// Submit runs the intake pipeline: resume presence, field validation,
// resume upload, then staff notification. Each stage short-circuits on
// failure. A notification failure after a successful upload downgrades
// the outcome to SubmissionPartial; the stored resume is kept and the
// send is not retried.
func (s *applicationService) Submit(ctx context.Context, app *models.AuthorApplication) (*models.SubmissionResult, []validation.ValidationError, error) {
	if app.Resume == nil || app.Resume.Reader == nil {
		return nil, []validation.ValidationError{
			{Field: "resume", Message: "resume file is required"},
		}, nil
	}

	if errs := validation.ValidateApplication(app); len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now()
	key := fmt.Sprintf("%d-%s", now.UnixMilli(), app.Resume.Filename)
	meta := blobstore.UploadMetadata{
		User:           app.Name,
		SubmissionDate: now,
		ContentType:    app.Resume.ContentType,
	}

	blobID, err := s.blobs.Upload(ctx, key, meta, app.Resume.Reader)
	if err != nil {
		s.log.Error().Err(err).Str("applicant", app.Name).Msg("Failed to store resume")
		return nil, nil, err
	}

	result := &models.SubmissionResult{
		Status:     models.SubmissionAccepted,
		Name:       app.Name,
		Email:      app.Email,
		Mobile:     app.Mobile,
		ResumePath: "/v1/files/" + blobID,
	}

	if err := s.sender.SendApplicationNotice(ctx, app, result.ResumePath); err != nil {
		// The resume is already stored; report the application as
		// received but unnotified rather than failing it
		s.log.Error().Err(err).
			Str("applicant", app.Name).
			Str("blob_id", blobID).
			Msg("Notification failed after resume upload")
		result.Status = models.SubmissionPartial
		return result, nil, nil
	}

	s.log.Info().
		Str("applicant", app.Name).
		Str("blob_id", blobID).
		Msg("Author application submitted")

	return result, nil, nil
}

// GetResume streams a stored resume to w
func (s *applicationService) GetResume(ctx context.Context, id string, w io.Writer) (*blobstore.FileInfo, error) {
	return s.blobs.Download(ctx, id, w)
}
