package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubCompleter struct {
	mu    sync.Mutex
	calls []string
	n     int
	err   error
}

func (c *stubCompleter) CompletePast(_ context.Context, today string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, today)
	return c.n, c.err
}

func TestSweeper_RunOnceUsesToday(t *testing.T) {
	stub := &stubCompleter{n: 3}
	s := NewSweeper(stub, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC) }

	if got := s.RunOnce(context.Background()); got != 3 {
		t.Fatalf("expected 3 completed, got %d", got)
	}
	if len(stub.calls) != 1 || stub.calls[0] != "2025-03-10" {
		t.Fatalf("unexpected calls: %v", stub.calls)
	}
}

func TestSweeper_RunOnceError(t *testing.T) {
	stub := &stubCompleter{n: 1, err: errors.New("db down")}
	s := NewSweeper(stub, zerolog.Nop())

	if got := s.RunOnce(context.Background()); got != 1 {
		t.Fatalf("expected partial count 1, got %d", got)
	}
}

func TestSweeper_StartRejectsBadSchedule(t *testing.T) {
	s := NewSweeper(&stubCompleter{}, zerolog.Nop())
	if err := s.Start("not a schedule"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
	s.Stop()
}

func TestSweeper_StartTwice(t *testing.T) {
	s := NewSweeper(&stubCompleter{}, zerolog.Nop())
	if err := s.Start("@every 1h"); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer s.Stop()

	if err := s.Start("@every 1h"); err == nil {
		t.Fatal("second Start should fail")
	}
}

func TestSweeper_RunsOnSchedule(t *testing.T) {
	stub := &stubCompleter{}
	s := NewSweeper(stub, zerolog.Nop())
	if err := s.Start("@every 1s"); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		stub.mu.Lock()
		n := len(stub.calls)
		stub.mu.Unlock()
		if n > 0 {
			s.Stop()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	s.Stop()
	t.Fatal("sweep never ran")
}
