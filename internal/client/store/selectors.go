package store

import "github.com/mindfulapp/mindful/internal/client/models"

// The selectors below return copies so callers can iterate without holding
// the store lock.

// Entries returns all journal entries, newest first.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.JournalEntry(nil), s.entries...)
}

// Entry looks up a single entry by id.
func (s *Store) Entry(id string) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entryLocked(id)
}

// FeedEntries returns the entries eligible for feed generation.
func (s *Store) FeedEntries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.JournalEntry
	for _, e := range s.entries {
		if e.IncludeInFeed {
			out = append(out, e)
		}
	}
	return out
}

// Tasks returns all tasks.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...)
}

// Task looks up a single task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskLocked(id)
}

// OpenTasks returns the tasks not yet completed.
func (s *Store) OpenTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Task
	for _, t := range s.tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Posts returns all feed posts.
func (s *Store) Posts() []models.FeedPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FeedPost(nil), s.posts...)
}

// Post looks up a single post by id.
func (s *Store) Post(id string) (models.FeedPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postLocked(id)
}

// PostsForEntry returns the posts derived from one journal entry.
func (s *Store) PostsForEntry(entryID string) []models.FeedPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FeedPost
	for _, p := range s.posts {
		if p.EntryID == entryID {
			out = append(out, p)
		}
	}
	return out
}

// Friends returns all companion profiles.
func (s *Store) Friends() []models.FriendProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FriendProfile(nil), s.friends...)
}

// Friend looks up a companion profile by id.
func (s *Store) Friend(id int) (models.FriendProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.friendLocked(id)
}
