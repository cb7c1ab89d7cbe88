package store

import (
	"context"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// CreatePost shares generated content to the feed, optimistically.
func (s *Store) CreatePost(ctx context.Context, p models.FeedPost) (models.FeedPost, error) {
	tempID := models.NewTempID()
	p.ID = tempID

	var created models.FeedPost
	err := s.mutate(ctx, KindPosts,
		func() func() {
			s.posts = append([]models.FeedPost{p}, s.posts...)
			return func() { s.removePostLocked(tempID) }
		},
		func(ctx context.Context) error {
			out, err := s.api.CreatePost(ctx, p)
			if err != nil {
				return err
			}
			created = out
			s.mu.Lock()
			s.replacePostLocked(tempID, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
	if err != nil {
		return models.FeedPost{}, err
	}
	return created, nil
}

// LikePost reads the current like state, applies the increment-or-decrement
// and flag flip optimistically, and sends the new pair. On failure the exact
// pre-like snapshot of that record is restored, so repeated failed attempts
// cannot drift the counter.
func (s *Store) LikePost(ctx context.Context, id string) error {
	var likes int
	var liked bool
	return s.mutate(ctx, KindPosts,
		func() func() {
			prev, ok := s.postLocked(id)
			if !ok {
				return func() {}
			}
			next := prev
			if prev.IsLiked {
				next.Likes = prev.Likes - 1
				next.IsLiked = false
			} else {
				next.Likes = prev.Likes + 1
				next.IsLiked = true
			}
			likes, liked = next.Likes, next.IsLiked
			s.replacePostLocked(id, next)
			return func() { s.replacePostLocked(id, prev) }
		},
		func(ctx context.Context) error {
			out, err := s.api.PatchPost(ctx, id, map[string]any{"likes": likes, "isLiked": liked})
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.replacePostLocked(id, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}

// DeletePost removes the post optimistically; a failed remote delete
// triggers a whole-collection refetch.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	return s.mutate(ctx, KindPosts,
		func() func() {
			s.removePostLocked(id)
			return func() {}
		},
		func(ctx context.Context) error {
			return s.api.DeletePost(ctx, id)
		},
		recoverRefetch,
	)
}

// --- locked helpers ---

func (s *Store) postLocked(id string) (models.FeedPost, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.FeedPost{}, false
}

func (s *Store) replacePostLocked(id string, p models.FeedPost) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i] = p
			return
		}
	}
	s.posts = append([]models.FeedPost{p}, s.posts...)
}

func (s *Store) removePostLocked(id string) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}
