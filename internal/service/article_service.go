package service

import (
	"context"

	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/repository"
	"github.com/newscoope/content-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: articles,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// List returns articles matching the filter, newest first. No match
// yields an empty slice.
func (s *articleService) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	articles, err := s.articles.Find(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).
			Str("category", filter.Category).
			Str("search", filter.Search).
			Msg("Failed to list articles")
		return nil, err
	}

	for _, a := range articles {
		a.ReadTime = models.ReadTimeMinutes(a.Description)
	}
	return articles, nil
}

// Get returns the article with the given id, or (nil, nil) when it is
// absent or the id is malformed
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("article_id", id).Msg("Failed to get article")
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	article.ReadTime = models.ReadTimeMinutes(article.Description)
	return article, nil
}

// Create validates the payload and inserts a new article. Validation
// failures are reported as a field list and never touch the store.
func (s *articleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, []validation.ValidationError, error) {
	if errs := validation.ValidateArticleInput(input); len(errs) > 0 {
		return nil, errs, nil
	}

	article := &models.Article{
		Title:       input.Title,
		Description: input.Description,
		Thumbnail:   input.Thumbnail,
		VideoLink:   input.VideoLink,
		Category:    input.Category,
		Author:      models.ParseAuthor(input.Author),
	}

	if err := s.articles.Insert(ctx, article); err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("Failed to insert article")
		return nil, nil, err
	}

	s.log.Info().
		Str("article_id", article.ID.Hex()).
		Str("category", article.Category).
		Str("author", article.Author.Display()).
		Msg("Article created")

	article.ReadTime = models.ReadTimeMinutes(article.Description)
	return article, nil, nil
}

// Count returns the total number of articles
func (s *articleService) Count(ctx context.Context) (int64, error) {
	return s.articles.Count(ctx)
}

// CountByCategory returns the number of articles in a category
func (s *articleService) CountByCategory(ctx context.Context, category string) (int64, error) {
	return s.articles.CountByCategory(ctx, category)
}
