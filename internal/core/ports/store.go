package ports

import "context"

// Store bundles the four record collections behind one backend. The volatile
// in-memory backend and the durable backends all satisfy it, so callers pick
// one at startup without knowing which.
type Store interface {
	Appointments() AppointmentRepository
	Products() ProductRepository
	Gallery() GalleryRepository
	Users() UserRepository

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
