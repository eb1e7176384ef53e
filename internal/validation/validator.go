package validation

import (
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/newscoope/content-api/internal/models"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticleInput validates an article creation payload
func ValidateArticleInput(in *models.ArticleInput) []ValidationError {
	var errors []ValidationError

	// Validate title
	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	// Validate description
	if in.Description == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	}

	// Validate thumbnail
	if in.Thumbnail == "" {
		errors = append(errors, ValidationError{Field: "thumbnail", Message: "thumbnail is required"})
	} else if !isValidURL(in.Thumbnail) {
		errors = append(errors, ValidationError{Field: "thumbnail", Message: "invalid thumbnail URL", Value: in.Thumbnail})
	}

	// Validate video link (optional)
	if in.VideoLink != "" && !isValidURL(in.VideoLink) {
		errors = append(errors, ValidationError{Field: "video_link", Message: "invalid video URL", Value: in.VideoLink})
	}

	// Validate category
	if in.Category == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	// Validate author (reference or display name, either is accepted)
	if in.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	}

	return errors
}

// ValidateApplication validates an author application's form fields.
// Resume presence is checked separately, before any of this runs.
func ValidateApplication(app *models.AuthorApplication) []ValidationError {
	var errors []ValidationError

	// Validate name
	if utf8.RuneCountInString(app.Name) < 2 {
		errors = append(errors, ValidationError{Field: "name", Message: "name must be at least 2 characters", Value: app.Name})
	}

	// Validate email
	if app.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(app.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email address", Value: app.Email})
	}

	// Validate mobile
	if !mobileRegex.MatchString(app.Mobile) {
		errors = append(errors, ValidationError{Field: "mobile", Message: "mobile number must be 10 digits", Value: app.Mobile})
	}

	// Validate bio
	if utf8.RuneCountInString(app.Bio) < 10 {
		errors = append(errors, ValidationError{Field: "bio", Message: "bio must be at least 10 characters"})
	}

	return errors
}

// isValidURL checks for an absolute URL with a scheme and host
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
