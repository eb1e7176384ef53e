package validation_test

import (
	"testing"

	"github.com/newscoope/content-api/internal/models"
	"github.com/newscoope/content-api/internal/validation"
)

func validArticleInput() *models.ArticleInput {
	return &models.ArticleInput{
		Title:       "Election results announced",
		Description: "Full coverage of the election results across the country.",
		Thumbnail:   "https://i.ibb.co/abc123/thumb.jpg",
		VideoLink:   "https://www.youtube.com/watch?v=xyz",
		Category:    "Politics",
		Author:      "Jane Reporter",
	}
}

func validApplication() *models.AuthorApplication {
	return &models.AuthorApplication{
		Name:   "Jane Reporter",
		Email:  "jane@example.com",
		Mobile: "9876543210",
		Bio:    "Ten years of newsroom experience covering politics.",
	}
}

func fieldNames(errs []validation.ValidationError) map[string]bool {
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateArticleInputValid(t *testing.T) {
	errs := validation.ValidateArticleInput(validArticleInput())
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateArticleInputOptionalVideoLink(t *testing.T) {
	in := validArticleInput()
	in.VideoLink = ""

	errs := validation.ValidateArticleInput(in)
	if len(errs) != 0 {
		t.Errorf("Video link is optional, got %v", errs)
	}
}

func TestValidateArticleInputMissingFields(t *testing.T) {
	in := &models.ArticleInput{}
	errs := validation.ValidateArticleInput(in)

	fields := fieldNames(errs)
	for _, want := range []string{"title", "description", "thumbnail", "category", "author"} {
		if !fields[want] {
			t.Errorf("Expected error for field %q, got %v", want, errs)
		}
	}
}

func TestValidateArticleInputBadURLs(t *testing.T) {
	in := validArticleInput()
	in.Thumbnail = "not-a-url"
	in.VideoLink = "also not a url"

	errs := validation.ValidateArticleInput(in)
	fields := fieldNames(errs)
	if !fields["thumbnail"] {
		t.Error("Expected error for thumbnail")
	}
	if !fields["video_link"] {
		t.Error("Expected error for video_link")
	}
}

func TestValidateApplicationValid(t *testing.T) {
	errs := validation.ValidateApplication(validApplication())
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateApplicationShortMobile(t *testing.T) {
	app := validApplication()
	app.Mobile = "12345"

	errs := validation.ValidateApplication(app)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "mobile" {
		t.Errorf("Expected error field 'mobile', got %q", errs[0].Field)
	}
}

func TestValidateApplicationMobileRejectsNonDigits(t *testing.T) {
	app := validApplication()
	app.Mobile = "987654321a"

	errs := validation.ValidateApplication(app)
	if len(errs) != 1 || errs[0].Field != "mobile" {
		t.Errorf("Expected mobile error, got %v", errs)
	}
}

func TestValidateApplicationReportsAllFailingFields(t *testing.T) {
	app := &models.AuthorApplication{
		Name:   "J",
		Email:  "not-an-email",
		Mobile: "123",
		Bio:    "too short",
	}

	errs := validation.ValidateApplication(app)
	fields := fieldNames(errs)
	for _, want := range []string{"name", "email", "mobile", "bio"} {
		if !fields[want] {
			t.Errorf("Expected error for field %q, got %v", want, errs)
		}
	}
}
