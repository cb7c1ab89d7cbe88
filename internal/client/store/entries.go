package store

import (
	"context"
	"time"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// CreateEntry inserts the entry optimistically under a temporary identifier
// and sends it to the collaborator. On success the placeholder is replaced
// by the stored version (durable id assigned remotely); on failure the
// placeholder is discarded.
func (s *Store) CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	tempID := models.NewTempID()
	e.ID = tempID

	var created models.JournalEntry
	err := s.mutate(ctx, KindEntries,
		func() func() {
			s.entries = append([]models.JournalEntry{e}, s.entries...)
			return func() { s.removeEntryLocked(tempID) }
		},
		func(ctx context.Context) error {
			out, err := s.api.CreateEntry(ctx, e)
			if err != nil {
				return err
			}
			created = out
			s.mu.Lock()
			s.replaceEntryLocked(tempID, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return created, nil
}

// UpdateEntry replaces the entry locally, then pushes the full record. On
// failure the pre-mutation snapshot is restored.
func (s *Store) UpdateEntry(ctx context.Context, updated models.JournalEntry) error {
	id := updated.ID
	return s.mutate(ctx, KindEntries,
		func() func() {
			prev, ok := s.entryLocked(id)
			s.replaceEntryLocked(id, updated)
			if !ok {
				return func() { s.removeEntryLocked(id) }
			}
			return func() { s.replaceEntryLocked(id, prev) }
		},
		func(ctx context.Context) error {
			out, err := s.api.UpdateEntry(ctx, id, updated)
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.replaceEntryLocked(id, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}

// SetEntryReflection patches only the AI reflection field of one entry.
func (s *Store) SetEntryReflection(ctx context.Context, id, reflection string) error {
	return s.mutate(ctx, KindEntries,
		func() func() {
			prev, ok := s.entryLocked(id)
			if !ok {
				return func() {}
			}
			next := prev
			next.AIReflection = reflection
			s.replaceEntryLocked(id, next)
			return func() { s.replaceEntryLocked(id, prev) }
		},
		func(ctx context.Context) error {
			out, err := s.api.PatchEntry(ctx, id, map[string]any{"aiReflection": reflection})
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.replaceEntryLocked(id, out)
			s.mu.Unlock()
			return nil
		},
		recoverRollback,
	)
}

// DeleteEntry removes the entry locally regardless of the remote outcome.
// A failed remote delete falls back to a whole-collection refetch, which
// restores whatever the collaborator still holds.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	return s.mutate(ctx, KindEntries,
		func() func() {
			s.removeEntryLocked(id)
			return func() {}
		},
		func(ctx context.Context) error {
			return s.api.DeleteEntry(ctx, id)
		},
		recoverRefetch,
	)
}

// --- locked helpers ---

func (s *Store) entryLocked(id string) (models.JournalEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

func (s *Store) replaceEntryLocked(id string, e models.JournalEntry) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i] = e
			return
		}
	}
	s.entries = append([]models.JournalEntry{e}, s.entries...)
}

func (s *Store) removeEntryLocked(id string) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
