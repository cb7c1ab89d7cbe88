package store

import (
	"context"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// CreateTask inserts the task optimistically and sends it to the
// collaborator; the placeholder is replaced by the stored version or
// discarded on failure.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	tempID := models.NewTempID()
	t.ID = tempID

	var created models.Task
	err := s.mutate(ctx, KindTasks,
		func() func() {
			s.tasks = append([]models.Task{t}, s.tasks...)
			return func() { s.removeTaskLocked(tempID) }
		},
		func(ctx context.Context) error {
			out, err := s.api.CreateTask(ctx, t)
			if err != nil {
				return err
			}
			created = out
			s.mu.Lock()
			s.replaceTaskLocked(tempID, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
	if err != nil {
		return models.Task{}, err
	}
	return created, nil
}

// ToggleTask flips the completion flag locally before the remote call
// resolves; a remote failure reverts the flag to its pre-toggle value.
func (s *Store) ToggleTask(ctx context.Context, id string) error {
	var next bool
	return s.mutate(ctx, KindTasks,
		func() func() {
			prev, ok := s.taskLocked(id)
			if !ok {
				return func() {}
			}
			toggled := prev
			toggled.Completed = !prev.Completed
			next = toggled.Completed
			s.replaceTaskLocked(id, toggled)
			return func() { s.replaceTaskLocked(id, prev) }
		},
		func(ctx context.Context) error {
			out, err := s.api.PatchTask(ctx, id, map[string]any{"completed": next})
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.replaceTaskLocked(id, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}

// DeleteTask removes the task optimistically; a failed remote delete
// triggers a whole-collection refetch.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, KindTasks,
		func() func() {
			s.removeTaskLocked(id)
			return func() {}
		},
		func(ctx context.Context) error {
			return s.api.DeleteTask(ctx, id)
		},
		recoverRefetch,
	)
}

// --- locked helpers ---

func (s *Store) taskLocked(id string) (models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

func (s *Store) replaceTaskLocked(id string, t models.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = t
			return
		}
	}
	s.tasks = append([]models.Task{t}, s.tasks...)
}

func (s *Store) removeTaskLocked(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
