// Package postgres is the gorm-backed record store.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mmemodas/storefront/internal/core/ports"
)

// Opener opens a gorm connection for a DSN. Swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

var retryInterval = 3 * time.Second

// Open connects to PostgreSQL with error translation enabled so unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener, log zerolog.Logger) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("postgres connect failed after %s: %w", timeout, err)
		}
		log.Warn().Err(err).Dur("retry_in", retryInterval).Msg("postgres connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

type Store struct {
	db           *gorm.DB
	appointments *AppointmentRepository
	products     *ProductRepository
	gallery      *GalleryRepository
	users        *UserRepository
}

var _ ports.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		appointments: NewAppointmentRepository(db),
		products:     NewProductRepository(db),
		gallery:      NewGalleryRepository(db),
		users:        NewUserRepository(db),
	}
}

// Migrate creates or updates the four tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&appointmentModel{},
		&productModel{},
		&galleryImageModel{},
		&userModel{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Appointments() ports.AppointmentRepository { return s.appointments }
func (s *Store) Products() ports.ProductRepository         { return s.products }
func (s *Store) Gallery() ports.GalleryRepository          { return s.gallery }
func (s *Store) Users() ports.UserRepository               { return s.users }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
