package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/database"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no blob exists for the requested id
var ErrNotFound = errors.New("blob not found")

// UploadMetadata is attached to a stored blob
type UploadMetadata struct {
	User           string
	SubmissionDate time.Time
	ContentType    string
}

// FileInfo describes a stored blob
type FileInfo struct {
	ID          string
	Name        string
	ContentType string
	Length      int64
}

// BlobStore is a binary object store addressed by generated keys.
// An uploaded blob becomes readable only after Upload returns without
// error; a failed upload leaves no complete-looking record behind.
type BlobStore interface {
	Upload(ctx context.Context, filename string, meta UploadMetadata, r io.Reader) (string, error)
	Download(ctx context.Context, id string, w io.Writer) (*FileInfo, error)
}

// gridfsStore is the concrete implementation backed by GridFS
type gridfsStore struct {
	db  *database.Mongo
	cfg *config.BlobConfig
	log zerolog.Logger
}

// New creates a GridFS-backed blob store
func New(db *database.Mongo, cfg *config.BlobConfig, log zerolog.Logger) BlobStore {
	return &gridfsStore{
		db:  db,
		cfg: cfg,
		log: log.With().Str("component", "blobstore").Logger(),
	}
}

func (s *gridfsStore) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	db, err := s.db.Database(ctx)
	if err != nil {
		return nil, err
	}
	return gridfs.NewBucket(db, options.GridFSBucket().SetName(s.cfg.Bucket))
}

// Upload streams bytes into the bucket under the given filename and
// returns the assigned blob id once the stream has closed cleanly
func (s *gridfsStore) Upload(ctx context.Context, filename string, meta UploadMetadata, r io.Reader) (string, error) {
	bucket, err := s.bucket(ctx)
	if err != nil {
		return "", err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return "", fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"user":           meta.User,
		"submissionDate": meta.SubmissionDate,
		"contentType":    meta.ContentType,
	})

	stream, err := bucket.OpenUploadStream(filename, uploadOpts)
	if err != nil {
		return "", fmt.Errorf("failed to open upload stream: %w", err)
	}

	if _, err := io.Copy(stream, r); err != nil {
		// Abort discards the partial write so no readable record remains
		if abortErr := stream.Abort(); abortErr != nil {
			s.log.Error().Err(abortErr).Str("filename", filename).Msg("Failed to abort upload stream")
		}
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected blob id type %T", stream.FileID)
	}

	s.log.Info().
		Str("blob_id", id.Hex()).
		Str("filename", filename).
		Msg("Blob stored")

	return id.Hex(), nil
}

// Download streams a stored blob to w and returns its descriptor
func (s *gridfsStore) Download(ctx context.Context, id string, w io.Writer) (*FileInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	bucket, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set read deadline: %w", err)
		}
	}

	stream, err := bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open download stream: %w", err)
	}
	defer stream.Close()

	file := stream.GetFile()
	info := &FileInfo{
		ID:          id,
		Name:        file.Name,
		ContentType: "application/octet-stream",
		Length:      file.Length,
	}
	if ct, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && ct != "" {
		info.ContentType = ct
	}

	if _, err := io.Copy(w, stream); err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return info, nil
}
