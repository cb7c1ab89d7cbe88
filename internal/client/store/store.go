// Package store implements the client-side state synchronizer. A Store owns
// the in-memory collections (entries, tasks, posts, friends, config) and
// mediates every mutation between callers and the REST collaborator:
// mutations apply optimistically, then either commit, roll back to the
// pre-mutation snapshot, or trigger a whole-collection refetch when the
// remote call fails.
//
// Overlapping mutations on the same identifier are not serialized; the
// mutex below guards memory safety only. The corrective for such races is
// the periodic full refetch.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mindfulapp/mindful/internal/client/api"
	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/logging"
)

// Kind names one synchronized collection.
type Kind string

const (
	KindEntries Kind = "entries"
	KindTasks   Kind = "tasks"
	KindPosts   Kind = "posts"
	KindFriends Kind = "friends"
	KindConfig  Kind = "config"
)

// State is a full snapshot of every collection, used to seed the store from
// the local cache and to persist refetch results.
type State struct {
	Entries []models.JournalEntry `json:"entries"`
	Tasks   []models.Task         `json:"tasks"`
	Posts   []models.FeedPost     `json:"posts"`
	Friends []models.FriendProfile `json:"friends"`
	Config  *models.ContentConfig `json:"config,omitempty"`
}

// Snapshotter persists and restores a State. The sqlite cache implements it.
type Snapshotter interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}

// Store is the synchronizer. All exported methods are safe for concurrent
// use.
type Store struct {
	mu   sync.Mutex
	api  api.Client
	log  logging.Logger
	snap Snapshotter

	entries []models.JournalEntry
	tasks   []models.Task
	posts   []models.FeedPost
	friends []models.FriendProfile
	config  *models.ContentConfig
}

type Option func(*Store)

// WithLogger overrides the default logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithSnapshotter attaches a local cache; Seed reads it and refetches write
// through it.
func WithSnapshotter(sn Snapshotter) Option {
	return func(s *Store) { s.snap = sn }
}

func New(client api.Client, opts ...Option) *Store {
	s := &Store{api: client, log: logging.NewDefault()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// recovery selects how a failed mutation corrects the local mirror.
type recovery int

const (
	recoverRollback recovery = iota
	recoverRefetch
)

// mutate is the single optimistic-mutation primitive. apply performs the
// local step under the lock and returns its undo; remote issues the
// collaborator call (and may commit the confirmed record itself). On remote
// failure the local mirror is corrected per the policy and the error is
// returned for display. Errors never leave the mirror permanently diverged.
func (s *Store) mutate(ctx context.Context, kind Kind, apply func() func(), remote func(context.Context) error, policy recovery) error {
	s.mu.Lock()
	undo := apply()
	s.mu.Unlock()

	err := remote(ctx)
	if err == nil {
		return nil
	}

	s.log.Error(ctx, "mutation failed", "collection", string(kind), "err", err)
	switch policy {
	case recoverRollback:
		s.mu.Lock()
		undo()
		s.mu.Unlock()
	case recoverRefetch:
		if rerr := s.Refetch(ctx, kind); rerr != nil {
			s.log.Error(ctx, "refetch after failed mutation", "collection", string(kind), "err", rerr)
		}
	}
	return fmt.Errorf("%s: %w", kind, err)
}

// Seed loads the cached snapshot into the collections. Missing cache data is
// not an error; the store simply starts empty until the first refetch.
func (s *Store) Seed(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	st, err := s.snap.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading cached state: %w", err)
	}
	if st == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = st.Entries
	s.tasks = st.Tasks
	s.posts = st.Posts
	s.friends = st.Friends
	s.config = st.Config
	return nil
}

// persist writes the current collections through to the cache, best effort.
func (s *Store) persist(ctx context.Context) {
	if s.snap == nil {
		return
	}
	s.mu.Lock()
	st := &State{
		Entries: append([]models.JournalEntry(nil), s.entries...),
		Tasks:   append([]models.Task(nil), s.tasks...),
		Posts:   append([]models.FeedPost(nil), s.posts...),
		Friends: append([]models.FriendProfile(nil), s.friends...),
		Config:  s.config,
	}
	s.mu.Unlock()
	if err := s.snap.Save(ctx, st); err != nil {
		s.log.Warn(ctx, "persisting state snapshot", "err", err)
	}
}
