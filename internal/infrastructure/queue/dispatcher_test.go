package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

type recordingService struct {
	mu   sync.Mutex
	seen map[string][]string // recipient -> refs in processing order
	done chan struct{}
	want int
}

func (s *recordingService) Process(_ context.Context, input ports.NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[input.Recipient] = append(s.seen[input.Recipient], input.Ref)
	s.want--
	if s.want == 0 {
		close(s.done)
	}
	return nil
}

func (s *recordingService) List(context.Context, string) ([]*domain.Notification, error) {
	return nil, nil
}
func (s *recordingService) MarkRead(context.Context, string, string) error { return nil }
func (s *recordingService) MarkAllRead(context.Context, string) error      { return nil }
func (s *recordingService) Delete(context.Context, string, string) error   { return nil }

func TestDispatcherPreservesPerRecipientOrdering(t *testing.T) {
	const perRecipient = 50
	recipients := []string{"alice", "bob", "carol"}

	svc := &recordingService{
		seen: make(map[string][]string),
		done: make(chan struct{}),
		want: perRecipient * len(recipients),
	}

	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < perRecipient; i++ {
		for _, r := range recipients {
			d.Notify(ports.NotificationInput{
				Recipient: r,
				Actor:     "system",
				Kind:      domain.NotifMessage,
				Ref:       fmt.Sprintf("%d", i),
			})
		}
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events to be processed")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, r := range recipients {
		refs := svc.seen[r]
		if len(refs) != perRecipient {
			t.Fatalf("recipient %s: got %d events, want %d", r, len(refs), perRecipient)
		}
		for i, ref := range refs {
			if ref != fmt.Sprintf("%d", i) {
				t.Errorf("recipient %s: event %d processed out of order: got ref %s", r, i, ref)
			}
		}
	}
}

func TestDispatcherDropsWhenWorkerBufferFull(t *testing.T) {
	// Workers are never started, so nothing drains the buffers.
	d := NewDispatcher(1, &recordingService{seen: map[string][]string{}, done: make(chan struct{}), want: 1}, zerolog.Nop())

	input := ports.NotificationInput{
		Recipient: "alice",
		Actor:     "system",
		Kind:      domain.NotifMessage,
		Ref:       "ref",
	}
	for i := 0; i < channelBuffer; i++ {
		d.Notify(input)
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("buffer holds %d events, want %d", got, channelBuffer)
	}

	returned := make(chan struct{})
	go func() {
		d.Notify(input)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full worker buffer")
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("overflow event was enqueued: buffer holds %d events", got)
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{seen: map[string][]string{}, done: make(chan struct{}), want: 1}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("got %d workers, want %d", len(d.workers), defaultWorkers)
	}
}

func TestShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())
	a := d.shardIndex("user-123")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("user-123"); got != a {
			t.Fatalf("shard index not stable: got %d, want %d", got, a)
		}
	}
}
