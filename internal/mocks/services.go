package mocks

import (
	"context"
	"io"

	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/validation"
)

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	Articles        []*models.Article
	ListError       error
	GetError        error
	CreateError     error
	ValidationErrs  []validation.ValidationError
	CreatedArticles []*models.ArticleInput
	LastFilter      models.ArticleFilter
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	m.LastFilter = filter
	if m.ListError != nil {
		return nil, m.ListError
	}
	if m.Articles == nil {
		return []*models.Article{}, nil
	}
	return m.Articles, nil
}

func (m *MockArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, a := range m.Articles {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, []validation.ValidationError, error) {
	if len(m.ValidationErrs) > 0 {
		return nil, m.ValidationErrs, nil
	}
	if m.CreateError != nil {
		return nil, nil, m.CreateError
	}
	m.CreatedArticles = append(m.CreatedArticles, input)
	article := &models.Article{
		Title:       input.Title,
		Description: input.Description,
		Thumbnail:   input.Thumbnail,
		VideoLink:   input.VideoLink,
		Category:    input.Category,
		Author:      models.ParseAuthor(input.Author),
	}
	return article, nil, nil
}

func (m *MockArticleService) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Articles)), nil
}

func (m *MockArticleService) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	for _, a := range m.Articles {
		if a.Category == category {
			count++
		}
	}
	return count, nil
}

// MockApplicationService is a mock implementation of service.ApplicationService
type MockApplicationService struct {
	Result         *models.SubmissionResult
	ValidationErrs []validation.ValidationError
	SubmitError    error
	Submitted      []*models.AuthorApplication
	Files          map[string][]byte
}

func NewMockApplicationService() *MockApplicationService {
	return &MockApplicationService{
		Files: make(map[string][]byte),
	}
}

func (m *MockApplicationService) Submit(ctx context.Context, app *models.AuthorApplication) (*models.SubmissionResult, []validation.ValidationError, error) {
	if len(m.ValidationErrs) > 0 {
		return nil, m.ValidationErrs, nil
	}
	if m.SubmitError != nil {
		return nil, nil, m.SubmitError
	}
	m.Submitted = append(m.Submitted, app)
	if m.Result != nil {
		return m.Result, nil, nil
	}
	return &models.SubmissionResult{
		Status: models.SubmissionAccepted,
		Name:   app.Name,
		Email:  app.Email,
		Mobile: app.Mobile,
	}, nil, nil
}

func (m *MockApplicationService) GetResume(ctx context.Context, id string, w io.Writer) (*blobstore.FileInfo, error) {
	data, ok := m.Files[id]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	return &blobstore.FileInfo{
		ID:          id,
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Length:      int64(len(data)),
	}, nil
}
