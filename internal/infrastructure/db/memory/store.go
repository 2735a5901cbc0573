// Package memory is the volatile record store. State lives for the lifetime
// of the Store value; each collection is guarded by its own RWMutex and
// records are copied in and out so callers never share memory with it.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmemodas/storefront/internal/core/ports"
)

type Store struct {
	appointments *AppointmentRepository
	products     *ProductRepository
	gallery      *GalleryRepository
	users        *UserRepository
}

var _ ports.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		appointments: NewAppointmentRepository(),
		products:     NewProductRepository(),
		gallery:      NewGalleryRepository(),
		users:        NewUserRepository(),
	}
}

// NewSeeded returns a store preloaded with the sample products and gallery
// images the site ships with.
func NewSeeded() *Store {
	s := New()
	s.Seed(time.Now().UTC())
	return s
}

func (s *Store) Appointments() ports.AppointmentRepository { return s.appointments }
func (s *Store) Products() ports.ProductRepository         { return s.products }
func (s *Store) Gallery() ports.GalleryRepository          { return s.gallery }
func (s *Store) Users() ports.UserRepository               { return s.users }

func (s *Store) Ping(context.Context) error  { return nil }
func (s *Store) Close(context.Context) error { return nil }

func newID() string {
	return uuid.NewString()
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
