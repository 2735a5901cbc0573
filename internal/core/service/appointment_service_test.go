package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// faultyAppointmentRepo wraps the memory repository and injects errors.
type faultyAppointmentRepo struct {
	*memory.AppointmentRepository
	insertErr error
	listErr   error
	updateErr error
}

func (r *faultyAppointmentRepo) Insert(ctx context.Context, a *domain.Appointment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	return r.AppointmentRepository.Insert(ctx, a)
}

func (r *faultyAppointmentRepo) List(ctx context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.AppointmentRepository.List(ctx, f)
}

func (r *faultyAppointmentRepo) UpdateStatus(ctx context.Context, id string, st domain.AppointmentStatus) (*domain.Appointment, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	return r.AppointmentRepository.UpdateStatus(ctx, id, st)
}

type stubLocker struct {
	busy       bool
	acquireErr error
	acquired   int
	released   []string
}

func (l *stubLocker) Acquire(_ context.Context, _, _ string) (string, bool, error) {
	if l.acquireErr != nil {
		return "", false, l.acquireErr
	}
	if l.busy {
		return "", false, nil
	}
	l.acquired++
	return "tok", true, nil
}

func (l *stubLocker) Release(_ context.Context, _, _, token string) error {
	l.released = append(l.released, token)
	return nil
}

func newAppointmentFixture() (*AppointmentService, *faultyAppointmentRepo, *stubLocker) {
	repo := &faultyAppointmentRepo{AppointmentRepository: memory.NewAppointmentRepository()}
	locker := &stubLocker{}
	svc := NewAppointmentService(repo, locker, zerolog.Nop())
	return svc, repo, locker
}

func booking(date, slot string) ports.BookAppointmentInput {
	return ports.BookAppointmentInput{
		Name:    "João Silva",
		Phone:   "(35) 99999-0000",
		Service: "Corte Masculino",
		Date:    date,
		Time:    slot,
	}
}

// ---------------------------------------------------------------------------
// Book
// ---------------------------------------------------------------------------

func TestAppointmentService_Book_Success(t *testing.T) {
	svc, _, locker := newAppointmentFixture()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	in := booking("2025-03-10", "09:00")
	in.Name = "  João Silva  "

	appt, err := svc.Book(context.Background(), in)
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if appt.Status != domain.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", appt.Status)
	}
	if appt.Name != "João Silva" {
		t.Errorf("expected trimmed name, got %q", appt.Name)
	}
	if !appt.CreatedAt.Equal(fixed) {
		t.Errorf("expected createdAt %v, got %v", fixed, appt.CreatedAt)
	}
	if locker.acquired != 1 || len(locker.released) != 1 || locker.released[0] != "tok" {
		t.Errorf("expected one acquire/release pair, got %d/%v", locker.acquired, locker.released)
	}
}

func TestAppointmentService_Book_ValidationErrors(t *testing.T) {
	svc, _, locker := newAppointmentFixture()

	cases := map[string]func(*ports.BookAppointmentInput){
		"missing name":    func(in *ports.BookAppointmentInput) { in.Name = " " },
		"missing phone":   func(in *ports.BookAppointmentInput) { in.Phone = "" },
		"missing service": func(in *ports.BookAppointmentInput) { in.Service = "" },
		"missing date":    func(in *ports.BookAppointmentInput) { in.Date = "" },
		"missing time":    func(in *ports.BookAppointmentInput) { in.Time = "" },
		"off catalog":     func(in *ports.BookAppointmentInput) { in.Time = "12:00" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := booking("2025-03-10", "09:00")
			mutate(&in)
			if _, err := svc.Book(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if locker.acquired != 0 {
		t.Errorf("invalid input must not take a slot lock")
	}
}

func TestAppointmentService_Book_SlotTaken(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	if _, err := svc.Book(ctx, booking("2025-03-10", "09:00")); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	_, err := svc.Book(ctx, booking("2025-03-10", "09:00"))
	if !errors.Is(err, domain.ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}

	if _, err := svc.Book(ctx, booking("2025-03-11", "09:00")); err != nil {
		t.Fatalf("same slot on another day should be free: %v", err)
	}
}

func TestAppointmentService_Book_CancelledSlotIsReusable(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	first, err := svc.Book(ctx, booking("2025-03-10", "10:00"))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, first.ID, "cancelled"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if _, err := svc.Book(ctx, booking("2025-03-10", "10:00")); err != nil {
		t.Fatalf("cancelled slot should be bookable again: %v", err)
	}
}

func TestAppointmentService_Book_LockBusy(t *testing.T) {
	svc, repo, locker := newAppointmentFixture()
	locker.busy = true

	_, err := svc.Book(context.Background(), booking("2025-03-10", "09:00"))
	if !errors.Is(err, domain.ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	list, _ := repo.List(context.Background(), ports.AppointmentFilter{})
	if len(list) != 0 {
		t.Errorf("nothing should be stored, got %d", len(list))
	}
}

func TestAppointmentService_Book_LockErrorProceeds(t *testing.T) {
	svc, _, locker := newAppointmentFixture()
	locker.acquireErr = errors.New("redis down")

	if _, err := svc.Book(context.Background(), booking("2025-03-10", "09:00")); err != nil {
		t.Fatalf("lock backend failure must not block booking: %v", err)
	}
	if len(locker.released) != 0 {
		t.Errorf("nothing to release when acquire failed")
	}
}

func TestAppointmentService_Book_RepoErrors(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()
	boom := errors.New("db down")

	repo.listErr = boom
	if _, err := svc.Book(context.Background(), booking("2025-03-10", "09:00")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped list error, got %v", err)
	}

	repo.listErr = nil
	repo.insertErr = boom
	if _, err := svc.Book(context.Background(), booking("2025-03-10", "09:00")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func TestAppointmentService_Book_ConcurrentSameSlot(t *testing.T) {
	repo := memory.NewAppointmentRepository()
	svc := NewAppointmentService(repo, memory.NewSlotLocker(), zerolog.Nop())

	const n = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, lost int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), booking("2025-03-10", "15:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrSlotUnavailable):
				lost++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || lost != n-1 {
		t.Fatalf("expected exactly one winner, got ok=%d lost=%d", ok, lost)
	}
}

// ---------------------------------------------------------------------------
// Availability / listing
// ---------------------------------------------------------------------------

func TestAppointmentService_Availability_Scenario(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	av, err := svc.Availability(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("Availability returned error: %v", err)
	}
	if len(av.Available) != 15 || len(av.Booked) != 0 {
		t.Fatalf("expected 15 free slots, got %d free %d booked", len(av.Available), len(av.Booked))
	}

	first, err := svc.Book(ctx, booking("2025-03-10", "09:00"))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	av, _ = svc.Availability(ctx, "2025-03-10")
	if len(av.Available) != 14 || len(av.Booked) != 1 || av.Booked[0] != "09:00" {
		t.Fatalf("unexpected availability after booking: %+v", av)
	}
	for _, s := range av.Available {
		if s == "09:00" {
			t.Fatal("09:00 should no longer be available")
		}
	}

	if _, err := svc.UpdateStatus(ctx, first.ID, "cancelled"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	av, _ = svc.Availability(ctx, "2025-03-10")
	if len(av.Available) != 15 || len(av.Booked) != 0 {
		t.Fatalf("cancelled booking should free the slot, got %+v", av)
	}
}

func TestAppointmentService_List_NewestFirst(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	ctx := context.Background()
	a, _ := svc.Book(ctx, booking("2025-03-10", "09:00"))
	b, _ := svc.Book(ctx, booking("2025-03-10", "09:30"))
	c, _ := svc.Book(ctx, booking("2025-03-11", "09:00"))

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 || list[0].ID != c.ID || list[1].ID != b.ID || list[2].ID != a.ID {
		t.Fatalf("expected newest first, got %v", ids(list))
	}

	byDate, _ := svc.ListByDate(ctx, "2025-03-10")
	if len(byDate) != 2 {
		t.Fatalf("expected 2 appointments on 2025-03-10, got %d", len(byDate))
	}
}

func ids(list []*domain.Appointment) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

// ---------------------------------------------------------------------------
// UpdateStatus
// ---------------------------------------------------------------------------

func TestAppointmentService_UpdateStatus(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()
	ctx := context.Background()

	appt, _ := svc.Book(ctx, booking("2025-03-10", "09:00"))

	got, err := svc.UpdateStatus(ctx, appt.ID, "completed")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}

	if _, err := svc.UpdateStatus(ctx, appt.ID, "pending"); err != domain.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	stored, _ := repo.Get(ctx, appt.ID)
	if stored.Status != domain.StatusCompleted {
		t.Errorf("invalid status must not change the record, got %s", stored.Status)
	}

	if _, err := svc.UpdateStatus(ctx, "missing", "cancelled"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAppointmentService_CompletePast(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()
	ctx := context.Background()

	old, _ := svc.Book(ctx, booking("2025-03-09", "09:00"))
	oldCancelled, _ := svc.Book(ctx, booking("2025-03-09", "10:00"))
	today, _ := svc.Book(ctx, booking("2025-03-10", "09:00"))
	_, _ = svc.UpdateStatus(ctx, oldCancelled.ID, "cancelled")

	n, err := svc.CompletePast(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("CompletePast returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 completed, got %d", n)
	}

	for id, want := range map[string]domain.AppointmentStatus{
		old.ID:          domain.StatusCompleted,
		oldCancelled.ID: domain.StatusCancelled,
		today.ID:        domain.StatusConfirmed,
	} {
		a, _ := repo.Get(ctx, id)
		if a.Status != want {
			t.Errorf("appointment %s: expected %s, got %s", id, want, a.Status)
		}
	}

	repo.updateErr = errors.New("db down")
	_, _ = svc.Book(ctx, booking("2025-03-08", "09:00"))
	if _, err := svc.CompletePast(ctx, "2025-03-10"); err == nil {
		t.Error("expected update error to surface")
	}
}
