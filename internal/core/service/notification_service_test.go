package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
	createErr     error
	nextID        int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	n.ID = fmt.Sprintf("notif_%d", r.nextID)
	clone := *n
	r.notifications[n.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.Recipient == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	n, ok := r.notifications[id]
	if !ok || n.Recipient != userID {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range r.notifications {
		if n.Recipient == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id, userID string) error {
	n, ok := r.notifications[id]
	if !ok || n.Recipient != userID {
		return domain.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

// stubDedup remembers marked keys, optionally failing checks.
type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(recipient, actor, kind, ref string) string {
	return recipient + "|" + actor + "|" + kind + "|" + ref
}

func (d *stubDedup) IsDuplicate(_ context.Context, recipient, actor, kind, ref string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(recipient, actor, kind, ref)], nil
}

func (d *stubDedup) Mark(_ context.Context, recipient, actor, kind, ref string) error {
	d.seen[d.key(recipient, actor, kind, ref)] = true
	return nil
}

func likeEvent() ports.NotificationInput {
	return ports.NotificationInput{
		Recipient: "alice",
		Actor:     "bob",
		Kind:      domain.NotifPostLike,
		Ref:       "post_1",
	}
}

func TestNotificationService_Process_Persists(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), likeEvent()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	list, _ := svc.List(context.Background(), "alice")
	if len(list) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(list))
	}
	if list[0].Kind != domain.NotifPostLike || list[0].Actor != "bob" || list[0].Read {
		t.Errorf("unexpected notification: %+v", list[0])
	}
}

func TestNotificationService_Process_SuppressesDuplicates(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	_ = svc.Process(context.Background(), likeEvent())
	if err := svc.Process(context.Background(), likeEvent()); err != nil {
		t.Fatalf("duplicate must be dropped silently, got %v", err)
	}

	list, _ := svc.List(context.Background(), "alice")
	if len(list) != 1 {
		t.Fatalf("duplicate was persisted: %d notifications", len(list))
	}
}

func TestNotificationService_Process_DedupFailureProcessesAnyway(t *testing.T) {
	repo := newStubNotificationRepo()
	dedup := newStubDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewNotificationService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), likeEvent()); err != nil {
		t.Fatalf("dedup failure must not block delivery, got %v", err)
	}
	list, _ := svc.List(context.Background(), "alice")
	if len(list) != 1 {
		t.Fatal("notification lost on dedup failure")
	}
}

func TestNotificationService_Process_RepoError(t *testing.T) {
	repo := newStubNotificationRepo()
	repo.createErr = errors.New("write failed")
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), likeEvent()); err == nil {
		t.Fatal("expected error when persistence fails")
	}
}

func TestNotificationService_MarkReadScopedToRecipient(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	_ = svc.Process(context.Background(), likeEvent())
	list, _ := svc.List(context.Background(), "alice")

	if err := svc.MarkRead(context.Background(), list[0].ID, "bob"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("foreign user must not mark read, got %v", err)
	}
	if err := svc.MarkRead(context.Background(), list[0].ID, "alice"); err != nil {
		t.Fatalf("owner mark read failed: %v", err)
	}

	list, _ = svc.List(context.Background(), "alice")
	if !list[0].Read {
		t.Fatal("notification not marked read")
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	_ = svc.Process(context.Background(), likeEvent())
	_ = svc.Process(context.Background(), ports.NotificationInput{
		Recipient: "alice", Actor: "carol", Kind: domain.NotifPostComment, Ref: "post_2",
	})

	if err := svc.MarkAllRead(context.Background(), "alice"); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	list, _ := svc.List(context.Background(), "alice")
	for _, n := range list {
		if !n.Read {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}
