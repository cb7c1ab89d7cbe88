package store

import (
	"context"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// CreateFriend adds an AI companion profile. Friend ids are numeric and
// assigned remotely, so the optimistic placeholder uses id 0 and is replaced
// (or discarded) when the call resolves.
func (s *Store) CreateFriend(ctx context.Context, f models.FriendProfile) (models.FriendProfile, error) {
	f.ID = 0

	var created models.FriendProfile
	err := s.mutate(ctx, KindFriends,
		func() func() {
			s.friends = append(s.friends, f)
			return func() { s.removeFriendLocked(0) }
		},
		func(ctx context.Context) error {
			out, err := s.api.CreateFriend(ctx, f)
			if err != nil {
				return err
			}
			created = out
			s.mu.Lock()
			s.replaceFriendLocked(0, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
	if err != nil {
		return models.FriendProfile{}, err
	}
	return created, nil
}

// UpdateFriend replaces the profile locally and pushes the full record.
func (s *Store) UpdateFriend(ctx context.Context, updated models.FriendProfile) error {
	id := updated.ID
	return s.mutate(ctx, KindFriends,
		func() func() {
			prev, ok := s.friendLocked(id)
			s.replaceFriendLocked(id, updated)
			if !ok {
				return func() { s.removeFriendLocked(id) }
			}
			return func() { s.replaceFriendLocked(id, prev) }
		},
		func(ctx context.Context) error {
			out, err := s.api.UpdateFriend(ctx, id, updated)
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.replaceFriendLocked(id, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}

// DeleteFriend removes the profile optimistically; a failed remote delete
// triggers a whole-collection refetch.
func (s *Store) DeleteFriend(ctx context.Context, id int) error {
	return s.mutate(ctx, KindFriends,
		func() func() {
			s.removeFriendLocked(id)
			return func() {}
		},
		func(ctx context.Context) error {
			return s.api.DeleteFriend(ctx, id)
		},
		recoverRefetch,
	)
}

// --- locked helpers ---

func (s *Store) friendLocked(id int) (models.FriendProfile, bool) {
	for _, f := range s.friends {
		if f.ID == id {
			return f, true
		}
	}
	return models.FriendProfile{}, false
}

func (s *Store) replaceFriendLocked(id int, f models.FriendProfile) {
	for i := range s.friends {
		if s.friends[i].ID == id {
			s.friends[i] = f
			return
		}
	}
	s.friends = append(s.friends, f)
}

func (s *Store) removeFriendLocked(id int) {
	for i := range s.friends {
		if s.friends[i].ID == id {
			s.friends = append(s.friends[:i], s.friends[i+1:]...)
			return
		}
	}
}
