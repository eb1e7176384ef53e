package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/service"
	"github.com/rs/zerolog"
)

// ApplicationHandler handles author-application endpoints
type ApplicationHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "application").Logger(),
	}
}

// SubmitApplication handles POST /v1/author-applications
// Accepts a multipart form: name, email, mobile, bio, resume file
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Blob.UploadTimeout)
	defer cancel()

	app := &models.AuthorApplication{
		Name:   c.PostForm("name"),
		Email:  c.PostForm("email"),
		Mobile: c.PostForm("mobile"),
		Bio:    c.PostForm("bio"),
	}

	file, header, err := c.Request.FormFile("resume")
	if err == nil {
		defer file.Close()

		if header.Size > h.cfg.Blob.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("resume too large, max size is %d MB", h.cfg.Blob.MaxUploadSize/(1024*1024)),
			})
			return
		}

		app.Resume = &models.ResumeFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	}

	result, validationErrs, err := h.services.Application.Submit(ctx, app)
	if len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  validationErrs,
		})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("applicant", app.Name).Msg("Failed to process application")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload resume",
		})
		return
	}

	if result.Status == models.SubmissionPartial {
		// Stored but unnotified: distinct from both success and failure
		c.JSON(http.StatusPartialContent, gin.H{
			"success": false,
			"message": "Application received but failed to send notification",
			"data":    result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application submitted successfully",
		"data":    result,
	})
}

// GetResume handles GET /v1/files/:id
func (h *ApplicationHandler) GetResume(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Mongo.OpTimeout)
	defer cancel()

	var buf bytes.Buffer
	info, err := h.services.Application.GetResume(ctx, c.Param("id"), &buf)
	if errors.Is(err, blobstore.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "File not found.",
		})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("file_id", c.Param("id")).Msg("Failed to stream file")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve file.",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name))
	c.Data(http.StatusOK, info.ContentType, buf.Bytes())
}
