package models

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a published news article
// Collection: articles
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	VideoLink   string             `bson:"video_link,omitempty" json:"video_link,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Author      Author             `bson:"author" json:"author"`
	ReadTime    int                `bson:"-" json:"read_time"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Author identifies who wrote an article. The two submission paths
// historically disagreed on the representation, so both are supported:
// either Ref points at a user document, or Name carries a plain display
// name. Exactly one side is set.
type Author struct {
	Ref  primitive.ObjectID `bson:"ref,omitempty" json:"ref,omitempty"`
	Name string             `bson:"name,omitempty" json:"name,omitempty"`
}

// ParseAuthor interprets a submitted author value. A 24-hex string is
// treated as a user reference; anything else is a literal display name,
// which is the authoritative form for new writes.
func ParseAuthor(s string) Author {
	if oid, err := primitive.ObjectIDFromHex(s); err == nil {
		return Author{Ref: oid}
	}
	return Author{Name: s}
}

// IsRef reports whether the author is a user reference
func (a Author) IsRef() bool {
	return !a.Ref.IsZero()
}

// IsZero reports whether no author was set at all
func (a Author) IsZero() bool {
	return a.Ref.IsZero() && a.Name == ""
}

// Display returns a printable form of the author
func (a Author) Display() string {
	if a.IsRef() {
		return a.Ref.Hex()
	}
	return a.Name
}

// MarshalJSON emits only the side of the union that is set
func (a Author) MarshalJSON() ([]byte, error) {
	if a.IsRef() {
		return json.Marshal(struct {
			Ref string `json:"ref"`
		}{a.Ref.Hex()})
	}
	return json.Marshal(struct {
		Name string `json:"name"`
	}{a.Name})
}

// Categories is the fixed list served to the browsing UI
var Categories = []string{
	"Technology",
	"Politics",
	"Sports",
	"Entertainment",
	"Business",
	"Science",
	"Health",
}

// readWordsPerMinute is the assumed reading speed for the estimate
const readWordsPerMinute = 200

// ReadTimeMinutes estimates reading time for a description, rounded up
// with a minimum of one minute for any non-empty text
func ReadTimeMinutes(description string) int {
	words := len(strings.Fields(description))
	if words == 0 {
		return 0
	}
	minutes := (words + readWordsPerMinute - 1) / readWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ArticleInput is the payload for creating an article
type ArticleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoLink   string `json:"video_link"`
	Category    string `json:"category"`
	Author      string `json:"author"`
}

// ArticleFilter narrows a listing. Zero values mean no constraint.
type ArticleFilter struct {
	Category string // full match, case-insensitive
	Search   string // substring over title or description, case-insensitive
}
