package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/newscoope/content-api/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps a lazily-initialized, shared document-store client.
// The first caller establishes the connection; later callers reuse it.
// A cached client that fails its ping is discarded and reconnected.
type Mongo struct {
	mu     sync.Mutex
	client *mongo.Client
	cfg    *config.MongoConfig
	log    zerolog.Logger
}

// New creates the adapter without connecting
func New(cfg *config.MongoConfig, log zerolog.Logger) *Mongo {
	return &Mongo{
		cfg: cfg,
		log: log.With().Str("component", "database").Logger(),
	}
}

// Database returns a handle to the configured database, connecting on
// first use and reconnecting if the cached client has gone away
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(m.cfg.Database), nil
}

func (m *Mongo) connect(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		if err := m.client.Ping(ctx, readpref.Primary()); err == nil {
			return m.client, nil
		}
		// Cached connection is dead; drop it and dial again
		m.log.Warn().Msg("Cached connection failed ping, reconnecting")
		_ = m.client.Disconnect(ctx)
		m.client = nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetConnectTimeout(m.cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	m.client = client
	m.log.Info().
		Str("database", m.cfg.Database).
		Msg("Document store connection established")

	return m.client, nil
}

// HealthCheck verifies the store connection is healthy
func (m *Mongo) HealthCheck(ctx context.Context) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// Close disconnects the cached client, if any
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
