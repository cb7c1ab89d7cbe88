package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// Refetch retrieves the full authoritative collection of the given kind and
// replaces the local one wholesale. No partial or incremental sync exists:
// refetch is always whole-collection.
func (s *Store) Refetch(ctx context.Context, kind Kind) error {
	switch kind {
	case KindEntries:
		entries, err := s.api.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("refetching entries: %w", err)
		}
		s.mu.Lock()
		s.entries = entries
		s.mu.Unlock()
	case KindTasks:
		tasks, err := s.api.ListTasks(ctx)
		if err != nil {
			return fmt.Errorf("refetching tasks: %w", err)
		}
		s.mu.Lock()
		s.tasks = tasks
		s.mu.Unlock()
	case KindPosts:
		posts, err := s.api.ListPosts(ctx)
		if err != nil {
			return fmt.Errorf("refetching posts: %w", err)
		}
		s.mu.Lock()
		s.posts = posts
		s.mu.Unlock()
	case KindFriends:
		friends, err := s.api.ListFriends(ctx)
		if err != nil {
			return fmt.Errorf("refetching friends: %w", err)
		}
		s.mu.Lock()
		s.friends = friends
		s.mu.Unlock()
	case KindConfig:
		cfg, err := s.api.GetConfig(ctx)
		if err != nil {
			return fmt.Errorf("refetching config: %w", err)
		}
		s.mu.Lock()
		s.config = cfg
		s.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", kind)
	}
	return nil
}

// RefetchAll refreshes every collection and writes the result through to the
// cache. The first error aborts the pass.
func (s *Store) RefetchAll(ctx context.Context) error {
	for _, kind := range []Kind{KindEntries, KindTasks, KindPosts, KindFriends, KindConfig} {
		if err := s.Refetch(ctx, kind); err != nil {
			return err
		}
	}
	s.persist(ctx)
	return nil
}

// RefetchAllWithRetry is the startup variant: the collaborator may still be
// coming up, so transient failures back off exponentially before giving up.
func (s *Store) RefetchAllWithRetry(ctx context.Context) error {
	backoff := retry.WithMaxRetries(4, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.RefetchAll(ctx); err != nil {
			s.log.Warn(ctx, "refetch attempt failed", "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}
