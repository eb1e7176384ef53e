package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/newscoope/content-api/internal/database"
	"github.com/newscoope/content-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const articleCollection = "articles"

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.Mongo
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.Mongo) ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.db.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(articleCollection), nil
}

// Insert stores a new article, assigning id and timestamps
func (r *articleRepo) Insert(ctx context.Context, article *models.Article) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now

	res, err := coll.InsertOne(ctx, article)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		article.ID = oid
	}
	return nil
}

// GetByID retrieves an article by ID. A malformed id is treated the
// same as an absent one.
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var article models.Article
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Find retrieves articles matching the filter, newest first
func (r *articleRepo) Find(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.Category != "" {
		// Full case-insensitive match, not a substring
		query["category"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(filter.Category) + "$",
			Options: "i",
		}
	}
	if filter.Search != "" {
		term := primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Search),
			Options: "i",
		}
		query["$or"] = bson.A{
			bson.M{"title": term},
			bson.M{"description": term},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	articles := []*models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}

// CountByCategory returns the number of articles in a category
func (r *articleRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{"category": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(category) + "$",
		Options: "i",
	}})
}
