package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
)

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.nextID++
	p.ID = fmt.Sprintf("post_%d", r.nextID)
	clone := *p
	r.posts[p.ID] = &clone
	return p, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	clone.Likes = append([]string(nil), p.Likes...)
	clone.Comments = append([]domain.Comment(nil), p.Comments...)
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context, limit int) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubPostRepo) ToggleLike(_ context.Context, postID, userID string) (bool, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, domain.ErrPostNotFound
	}
	if p.LikedBy(userID) {
		p.Likes = pull(p.Likes, userID)
		return false, nil
	}
	p.Likes = addToSet(p.Likes, userID)
	return true, nil
}

func (r *stubPostRepo) AddComment(_ context.Context, postID string, comment domain.Comment) error {
	p, ok := r.posts[postID]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Comments = append(p.Comments, comment)
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestPostService_ToggleLike_Idempotent(t *testing.T) {
	repo := newStubPostRepo()
	notifier := &recordingNotifier{}
	svc := NewPostService(repo, notifier, zerolog.Nop())
	ctx := context.Background()

	post, _ := svc.Create(ctx, "alice", "hello world", "")

	liked, err := svc.ToggleLike(ctx, post.ID, "bob")
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if !liked.LikedBy("bob") {
		t.Fatal("first toggle must like")
	}

	unliked, _ := svc.ToggleLike(ctx, post.ID, "bob")
	if unliked.LikedBy("bob") {
		t.Fatal("second toggle must unlike")
	}
	if got := len(unliked.Likes); got != 0 {
		t.Fatalf("expected empty like set, got %d entries", got)
	}
}

func TestPostService_ToggleLike_NotifiesAuthorOnLikeOnly(t *testing.T) {
	repo := newStubPostRepo()
	notifier := &recordingNotifier{}
	svc := NewPostService(repo, notifier, zerolog.Nop())
	ctx := context.Background()

	post, _ := svc.Create(ctx, "alice", "hello", "")

	_, _ = svc.ToggleLike(ctx, post.ID, "bob") // like
	_, _ = svc.ToggleLike(ctx, post.ID, "bob") // unlike — silent

	if len(notifier.events) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.events))
	}
	if notifier.events[0].Kind != domain.NotifPostLike || notifier.events[0].Recipient != "alice" {
		t.Errorf("unexpected notification: %+v", notifier.events[0])
	}
}

func TestPostService_ToggleLike_OwnPostIsSilent(t *testing.T) {
	repo := newStubPostRepo()
	notifier := &recordingNotifier{}
	svc := NewPostService(repo, notifier, zerolog.Nop())
	ctx := context.Background()

	post, _ := svc.Create(ctx, "alice", "hello", "")
	_, _ = svc.ToggleLike(ctx, post.ID, "alice")

	if len(notifier.events) != 0 {
		t.Fatalf("liking your own post must not notify, got %+v", notifier.events)
	}
}

func TestPostService_Comment_AppendsMonotonically(t *testing.T) {
	repo := newStubPostRepo()
	notifier := &recordingNotifier{}
	svc := NewPostService(repo, notifier, zerolog.Nop())
	ctx := context.Background()

	post, _ := svc.Create(ctx, "alice", "hello", "")

	first, _ := svc.Comment(ctx, post.ID, "bob", "nice")
	second, err := svc.Comment(ctx, post.ID, "carol", "agreed")
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if len(first.Comments) != 1 || len(second.Comments) != 2 {
		t.Fatalf("comments must grow monotonically: %d then %d", len(first.Comments), len(second.Comments))
	}
	if second.Comments[0].Text != "nice" || second.Comments[1].Text != "agreed" {
		t.Error("comment order must be preserved")
	}
	if second.Comments[0].CreatedAt.IsZero() {
		t.Error("comment timestamp must be set")
	}
}

func TestPostService_Delete_AuthorOnly(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, &recordingNotifier{}, zerolog.Nop())
	ctx := context.Background()

	post, _ := svc.Create(ctx, "alice", "hello", "")

	if err := svc.Delete(ctx, post.ID, "bob", domain.RoleJobSeeker); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, post.ID, "bob", domain.RoleAdmin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatal("post must be gone after delete")
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), &recordingNotifier{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
