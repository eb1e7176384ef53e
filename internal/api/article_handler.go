package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /v1/articles
// Optional query params: category (full case-insensitive match) and
// search (substring over title/description)
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Mongo.OpTimeout)
	defer cancel()

	filter := models.ArticleFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	articles, err := h.services.Article.List(ctx, filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve news items.",
			"data":    []*models.Article{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News items retrieved successfully.",
		"data":    articles,
	})
}

// GetArticle handles GET /v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Mongo.OpTimeout)
	defer cancel()

	article, err := h.services.Article.Get(ctx, c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("article_id", c.Param("id")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve news item.",
			"data":    nil,
		})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "News item not found.",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News item retrieved successfully.",
		"data":    article,
	})
}

// CreateArticle handles POST /v1/articles
// Accepts a multipart form: title, description, thumbnail, videoLink?,
// category, author
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Mongo.OpTimeout)
	defer cancel()

	input := &models.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Thumbnail:   c.PostForm("thumbnail"),
		VideoLink:   c.PostForm("videoLink"),
		Category:    c.PostForm("category"),
		Author:      c.PostForm("author"),
	}

	article, validationErrs, err := h.services.Article.Create(ctx, input)
	if len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  validationErrs,
		})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create news item.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "News created successfully.",
		"data":    article,
	})
}

// ListCategories handles GET /v1/categories
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Categories retrieved successfully.",
		"data":    models.Categories,
	})
}
