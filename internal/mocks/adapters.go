package mocks

import (
	"context"
	"io"

	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredBlob captures one uploaded blob
type StoredBlob struct {
	Filename string
	Meta     blobstore.UploadMetadata
	Data     []byte
}

// MockBlobStore is an in-memory implementation of BlobStore
type MockBlobStore struct {
	Blobs       map[string]*StoredBlob
	UploadError error
	UploadCalls int
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		Blobs: make(map[string]*StoredBlob),
	}
}

func (m *MockBlobStore) Upload(ctx context.Context, filename string, meta blobstore.UploadMetadata, r io.Reader) (string, error) {
	m.UploadCalls++
	if m.UploadError != nil {
		return "", m.UploadError
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	m.Blobs[id] = &StoredBlob{Filename: filename, Meta: meta, Data: data}
	return id, nil
}

func (m *MockBlobStore) Download(ctx context.Context, id string, w io.Writer) (*blobstore.FileInfo, error) {
	blob, ok := m.Blobs[id]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	if _, err := w.Write(blob.Data); err != nil {
		return nil, err
	}
	return &blobstore.FileInfo{
		ID:          id,
		Name:        blob.Filename,
		ContentType: blob.Meta.ContentType,
		Length:      int64(len(blob.Data)),
	}, nil
}

// SentNotice captures one notification send
type SentNotice struct {
	Application *models.AuthorApplication
	ResumePath  string
}

// MockSender is an in-memory implementation of mailer.Sender
type MockSender struct {
	Sent      []SentNotice
	SendError error
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) SendApplicationNotice(ctx context.Context, app *models.AuthorApplication, resumePath string) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.Sent = append(m.Sent, SentNotice{Application: app, ResumePath: resumePath})
	return nil
}
