package mocks

import (
	"context"
	"strings"
	"time"

	"github.com/newscoope/content-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    []*models.Article
	InsertError error
	FindError   error
	InsertCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{}
}

func (m *MockArticleRepository) Insert(ctx context.Context, article *models.Article) error {
	m.InsertCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	article.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	m.Articles = append(m.Articles, article)
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	for _, a := range m.Articles {
		if a.ID.Hex() == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) Find(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}

	matched := []*models.Article{}
	for _, a := range m.Articles {
		if filter.Category != "" && !strings.EqualFold(a.Category, filter.Category) {
			continue
		}
		if filter.Search != "" {
			term := strings.ToLower(filter.Search)
			title := strings.ToLower(a.Title)
			desc := strings.ToLower(a.Description)
			if !strings.Contains(title, term) && !strings.Contains(desc, term) {
				continue
			}
		}
		copied := *a
		matched = append(matched, &copied)
	}

	// Newest first
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if matched[j].CreatedAt.After(matched[i].CreatedAt) {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}
	return matched, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int64, error) {
	if m.FindError != nil {
		return 0, m.FindError
	}
	return int64(len(m.Articles)), nil
}

func (m *MockArticleRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	if m.FindError != nil {
		return 0, m.FindError
	}
	var count int64
	for _, a := range m.Articles {
		if strings.EqualFold(a.Category, category) {
			count++
		}
	}
	return count, nil
}
