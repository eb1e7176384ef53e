package repository

import (
	"context"

	"github.com/newscoope/content-api/internal/database"
	"github.com/newscoope/content-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Find and GetByID return what the store holds; a missing article is
// (nil, nil), not an error.
type ArticleRepository interface {
	Insert(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Find(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
}

// New creates all repositories with the given store adapter
func New(db *database.Mongo) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
	}
}
