package service

import (
	"context"
	"io"

	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/mailer"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/repository"
	"github.com/newscoope/content-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, input *models.ArticleInput) (*models.Article, []validation.ValidationError, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// ApplicationService defines the interface for author-application intake
type ApplicationService interface {
	Submit(ctx context.Context, app *models.AuthorApplication) (*models.SubmissionResult, []validation.ValidationError, error)
	GetResume(ctx context.Context, id string, w io.Writer) (*blobstore.FileInfo, error)
}

// Services holds all service interfaces
type Services struct {
	Article     ArticleService
	Application ApplicationService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, blobs blobstore.BlobStore, sender mailer.Sender, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:     newArticleService(repos.Article, log),
		Application: newApplicationService(blobs, sender, log),
	}
}
