package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindfulapp/mindful/internal/client/models"
)

func TestFeedEntries_FiltersByFlag(t *testing.T) {
	s := New(nil)
	s.entries = []models.JournalEntry{
		{ID: "1", IncludeInFeed: true},
		{ID: "2", IncludeInFeed: false},
		{ID: "3", IncludeInFeed: true},
	}

	feed := s.FeedEntries()
	require.Len(t, feed, 2)
	require.Equal(t, "1", feed[0].ID)
	require.Equal(t, "3", feed[1].ID)
}

func TestOpenTasks_ExcludesCompleted(t *testing.T) {
	s := New(nil)
	s.tasks = []models.Task{
		{ID: "1", Completed: true},
		{ID: "2", Completed: false},
	}

	open := s.OpenTasks()
	require.Len(t, open, 1)
	require.Equal(t, "2", open[0].ID)
}

func TestPostsForEntry_MergesByEntry(t *testing.T) {
	s := New(nil)
	s.posts = []models.FeedPost{
		{ID: "a", EntryID: "1"},
		{ID: "b", EntryID: "2"},
		{ID: "c", EntryID: "1"},
	}

	posts := s.PostsForEntry("1")
	require.Len(t, posts, 2)
}

func TestSelectors_ReturnCopies(t *testing.T) {
	s := New(nil)
	s.tasks = []models.Task{{ID: "1", Title: "original"}}

	tasks := s.Tasks()
	tasks[0].Title = "mutated"

	got, ok := s.Task("1")
	require.True(t, ok)
	require.Equal(t, "original", got.Title)
}

// fakeSnapshotter records saves and serves one canned state.
type fakeSnapshotter struct {
	state *State
	saved *State
}

func (f *fakeSnapshotter) Load(ctx context.Context) (*State, error)   { return f.state, nil }
func (f *fakeSnapshotter) Save(ctx context.Context, st *State) error { f.saved = st; return nil }

func TestSeed_LoadsCachedState(t *testing.T) {
	snap := &fakeSnapshotter{state: &State{
		Entries: []models.JournalEntry{{ID: "1", Content: "cached"}},
		Tasks:   []models.Task{{ID: "2", Title: "cached task"}},
	}}
	s := New(nil, WithSnapshotter(snap))

	require.NoError(t, s.Seed(context.Background()))
	require.Len(t, s.Entries(), 1)
	require.Len(t, s.Tasks(), 1)
}

func TestRefetchAll_WritesThroughSnapshot(t *testing.T) {
	fake := &fakeAPI{
		listEntriesFn: func(ctx context.Context) ([]models.JournalEntry, error) {
			return []models.JournalEntry{{ID: "1"}}, nil
		},
		listTasksFn:   func(ctx context.Context) ([]models.Task, error) { return []models.Task{{ID: "2"}}, nil },
		listPostsFn:   func(ctx context.Context) ([]models.FeedPost, error) { return nil, nil },
		listFriendsFn: func(ctx context.Context) ([]models.FriendProfile, error) { return nil, nil },
		getConfigFn:   func(ctx context.Context) (*models.ContentConfig, error) { return nil, nil },
	}
	snap := &fakeSnapshotter{}
	s := New(fake, WithSnapshotter(snap))

	require.NoError(t, s.RefetchAll(context.Background()))
	require.NotNil(t, snap.saved)
	require.Len(t, snap.saved.Entries, 1)
	require.Len(t, snap.saved.Tasks, 1)
}
