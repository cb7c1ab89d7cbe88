package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindfulapp/mindful/internal/client/api"
	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/client/store"
)

// fakeAPI implements api.Client for the methods a test configures; anything
// else panics via the embedded nil interface.
type fakeAPI struct {
	api.Client

	createEntryFn func(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error)
	createTaskFn  func(ctx context.Context, t models.Task) (models.Task, error)
	patchTaskFn   func(ctx context.Context, id string, fields map[string]any) (models.Task, error)
}

func (f *fakeAPI) CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	return f.createEntryFn(ctx, e)
}
func (f *fakeAPI) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	return f.createTaskFn(ctx, t)
}
func (f *fakeAPI) PatchTask(ctx context.Context, id string, fields map[string]any) (models.Task, error) {
	return f.patchTaskFn(ctx, id, fields)
}

func newTestApp(fake api.Client, input string) *App {
	return &App{
		store:  store.New(fake),
		reader: rdr(input),
	}
}

func TestWriteEntry_SavesThroughSynchronizer(t *testing.T) {
	fake := &fakeAPI{
		createEntryFn: func(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
			e.ID = "srv-1"
			return e, nil
		},
	}
	// multiline content, mood, tags, attachment (skipped), share-to-feed
	a := newTestApp(fake, "today was good\n\nGOOD\ngratitude\n\ny\n")

	require.NoError(t, a.WriteEntry(context.Background()))

	entries := a.store.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "srv-1", entries[0].ID)
	require.Equal(t, models.MoodGood, entries[0].Mood)
	require.Equal(t, []string{"gratitude"}, entries[0].Tags)
	require.True(t, entries[0].IncludeInFeed)
}

func TestAddTask_DefaultsPriority(t *testing.T) {
	fake := &fakeAPI{
		createTaskFn: func(ctx context.Context, task models.Task) (models.Task, error) {
			task.ID = "t1"
			return task, nil
		},
	}
	a := newTestApp(fake, "water plants\n\n")

	require.NoError(t, a.AddTask(context.Background()))

	tasks := a.store.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, models.PriorityMedium, tasks[0].Priority)
}

func TestToggleTask_RollsBackWhenRejected(t *testing.T) {
	fake := &fakeAPI{
		createTaskFn: func(ctx context.Context, task models.Task) (models.Task, error) {
			task.ID = "t1"
			return task, nil
		},
		patchTaskFn: func(ctx context.Context, id string, fields map[string]any) (models.Task, error) {
			return models.Task{}, errors.New("boom")
		},
	}
	a := newTestApp(fake, "t1\n")
	_, err := a.store.CreateTask(context.Background(), models.Task{Title: "x"})
	require.NoError(t, err)

	require.Error(t, a.ToggleTask(context.Background()))

	task, ok := a.store.Task("t1")
	require.True(t, ok)
	require.False(t, task.Completed)
}
