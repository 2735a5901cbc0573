package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmemodas/storefront/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Store is the document-backed record store, one collection per entity.
type Store struct {
	client       *mongo.Client
	appointments *AppointmentRepository
	products     *ProductRepository
	gallery      *GalleryRepository
	users        *UserRepository
}

var _ ports.Store = (*Store)(nil)

func NewStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:       client,
		appointments: NewAppointmentRepository(db),
		products:     NewProductRepository(db),
		gallery:      NewGalleryRepository(db),
		users:        NewUserRepository(db),
	}
}

// Open connects and makes sure every collection has its indexes.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	client, db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := NewStore(client, db)
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return s, nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	if err := s.appointments.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.products.EnsureIndexes(ctx); err != nil {
		return err
	}
	return s.users.EnsureIndexes(ctx)
}

func (s *Store) Appointments() ports.AppointmentRepository { return s.appointments }
func (s *Store) Products() ports.ProductRepository         { return s.products }
func (s *Store) Gallery() ports.GalleryRepository          { return s.gallery }
func (s *Store) Users() ports.UserRepository               { return s.users }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
