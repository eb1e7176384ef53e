package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newscoope/content-api/internal/api"
	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/mocks"
	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/service"
	"github.com/newscoope/content-api/internal/validation"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestRouter() (*gin.Engine, *mocks.MockArticleService, *mocks.MockApplicationService) {
	gin.SetMode(gin.TestMode)

	mockArticle := mocks.NewMockArticleService()
	mockApplication := mocks.NewMockApplicationService()

	services := &service.Services{
		Article:     mockArticle,
		Application: mockApplication,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Mongo:  config.MongoConfig{OpTimeout: 5 * time.Second},
		Blob: config.BlobConfig{
			Bucket:        "fs",
			MaxUploadSize: 10 * 1024 * 1024,
			UploadTimeout: 5 * time.Second,
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, log)

	return router, mockArticle, mockApplication
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
}

func TestListArticles(t *testing.T) {
	router, mockArticle, _ := setupTestRouter()
	mockArticle.Articles = []*models.Article{
		{
			ID:          primitive.NewObjectID(),
			Title:       "Election results announced",
			Description: "Coverage of the vote.",
			Thumbnail:   "https://i.ibb.co/a.jpg",
			Category:    "Politics",
			Author:      models.Author{Name: "Jane"},
			CreatedAt:   time.Now(),
		},
	}

	req := httptest.NewRequest("GET", "/v1/articles?category=Politics&search=elect", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if mockArticle.LastFilter.Category != "Politics" || mockArticle.LastFilter.Search != "elect" {
		t.Errorf("Filter not passed through, got %+v", mockArticle.LastFilter)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	data := response["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("Expected 1 article, got %d", len(data))
	}
}

func TestListArticlesStoreFailure(t *testing.T) {
	router, mockArticle, _ := setupTestRouter()
	mockArticle.ListError = errors.New("connection refused")

	req := httptest.NewRequest("GET", "/v1/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
	if data, ok := response["data"].([]interface{}); !ok || len(data) != 0 {
		t.Errorf("Expected empty data array, got %v", response["data"])
	}
}

func TestGetArticleNotFound(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/656b1f2a9d3e4c0011223344", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
	if response["data"] != nil {
		t.Errorf("Expected null data, got %v", response["data"])
	}
}

func TestGetArticleFound(t *testing.T) {
	router, mockArticle, _ := setupTestRouter()
	article := &models.Article{
		ID:          primitive.NewObjectID(),
		Title:       "Championship final tonight",
		Description: "The big game kicks off.",
		Thumbnail:   "https://i.ibb.co/b.jpg",
		Category:    "Sports",
		Author:      models.Author{Name: "Sam"},
	}
	mockArticle.Articles = []*models.Article{article}

	req := httptest.NewRequest("GET", "/v1/articles/"+article.ID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	data := response["data"].(map[string]interface{})
	if data["title"] != article.Title {
		t.Errorf("Expected title %q, got %v", article.Title, data["title"])
	}
}

func articleForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestCreateArticle(t *testing.T) {
	router, mockArticle, _ := setupTestRouter()

	body, contentType := articleForm(t, map[string]string{
		"title":       "New vaccine approved",
		"description": "Health agency approves the new vaccine.",
		"thumbnail":   "https://i.ibb.co/c.jpg",
		"category":    "Health",
		"author":      "Jane Reporter",
	})

	req := httptest.NewRequest("POST", "/v1/articles", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockArticle.CreatedArticles) != 1 {
		t.Fatalf("Expected 1 create call, got %d", len(mockArticle.CreatedArticles))
	}
	if mockArticle.CreatedArticles[0].Category != "Health" {
		t.Errorf("Form fields not passed through: %+v", mockArticle.CreatedArticles[0])
	}
}

func TestCreateArticleValidationFailure(t *testing.T) {
	router, mockArticle, _ := setupTestRouter()
	mockArticle.ValidationErrs = []validation.ValidationError{
		{Field: "title", Message: "title is required"},
	}

	body, contentType := articleForm(t, map[string]string{"description": "no title"})

	req := httptest.NewRequest("POST", "/v1/articles", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	errs := response["errors"].([]interface{})
	first := errs[0].(map[string]interface{})
	if first["field"] != "title" {
		t.Errorf("Expected title error, got %v", first)
	}
}

func applicationForm(t *testing.T, fields map[string]string, resume []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	if resume != nil {
		part, err := writer.CreateFormFile("resume", "resume.pdf")
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		part.Write(resume)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func applicationFields() map[string]string {
	return map[string]string{
		"name":   "Jane Reporter",
		"email":  "jane@example.com",
		"mobile": "9876543210",
		"bio":    "Ten years of newsroom experience covering politics.",
	}
}

func TestSubmitApplication(t *testing.T) {
	router, _, mockApplication := setupTestRouter()

	body, contentType := applicationForm(t, applicationFields(), []byte("resume-body"))

	req := httptest.NewRequest("POST", "/v1/author-applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockApplication.Submitted) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(mockApplication.Submitted))
	}

	app := mockApplication.Submitted[0]
	if app.Resume == nil {
		t.Fatal("Expected the resume to reach the service")
	}
	if app.Resume.Filename != "resume.pdf" {
		t.Errorf("Expected original filename, got %q", app.Resume.Filename)
	}
	data, _ := io.ReadAll(app.Resume.Reader)
	if string(data) != "resume-body" {
		t.Errorf("Resume bytes not passed through")
	}
}

func TestSubmitApplicationMissingResume(t *testing.T) {
	router, _, mockApplication := setupTestRouter()
	mockApplication.ValidationErrs = []validation.ValidationError{
		{Field: "resume", Message: "resume file is required"},
	}

	body, contentType := applicationForm(t, applicationFields(), nil)

	req := httptest.NewRequest("POST", "/v1/author-applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestSubmitApplicationPartialSuccess(t *testing.T) {
	router, _, mockApplication := setupTestRouter()
	mockApplication.Result = &models.SubmissionResult{
		Status:     models.SubmissionPartial,
		Name:       "Jane Reporter",
		Email:      "jane@example.com",
		Mobile:     "9876543210",
		ResumePath: "/v1/files/656b1f2a9d3e4c0011223344",
	}

	body, contentType := applicationForm(t, applicationFields(), []byte("resume-body"))

	req := httptest.NewRequest("POST", "/v1/author-applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusPartialContent {
		t.Fatalf("Expected status 206, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != false {
		t.Errorf("Partial success must not report success true")
	}
	data := response["data"].(map[string]interface{})
	if data["status"] != string(models.SubmissionPartial) {
		t.Errorf("Expected partial status in body, got %v", data["status"])
	}
}

func TestSubmitApplicationStorageFailure(t *testing.T) {
	router, _, mockApplication := setupTestRouter()
	mockApplication.SubmitError = errors.New("bucket unavailable")

	body, contentType := applicationForm(t, applicationFields(), []byte("resume-body"))

	req := httptest.NewRequest("POST", "/v1/author-applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
}

func TestGetResume(t *testing.T) {
	router, _, mockApplication := setupTestRouter()
	mockApplication.Files["656b1f2a9d3e4c0011223344"] = []byte("resume-body")

	req := httptest.NewRequest("GET", "/v1/files/656b1f2a9d3e4c0011223344", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "resume-body" {
		t.Errorf("Expected resume bytes, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected stored content type, got %q", ct)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/files/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestUIConfig(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	data := response["data"].(map[string]interface{})
	if _, ok := data["allowed_image_hosts"]; !ok {
		t.Error("Expected allowed_image_hosts in config response")
	}
}

func TestListCategories(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	data := response["data"].([]interface{})
	if len(data) != len(models.Categories) {
		t.Errorf("Expected %d categories, got %d", len(models.Categories), len(data))
	}
}
