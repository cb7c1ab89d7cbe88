// Package models defines the client-side views of the Mindful collaborator's
// resources. Field names follow the collaborator's JSON (camelCase, string
// identifiers for entries/tasks/posts).
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mood is the enumerated mood of a journal entry.
type Mood string

const (
	MoodGreat    Mood = "GREAT"
	MoodGood     Mood = "GOOD"
	MoodNeutral  Mood = "NEUTRAL"
	MoodStressed Mood = "STRESSED"
	MoodBad      Mood = "BAD"
)

// tempIDPrefix marks identifiers assigned client-side before the collaborator
// stores the record and returns the durable id.
const tempIDPrefix = "tmp-"

// NewTempID returns a fresh temporary client-side identifier.
func NewTempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id was assigned client-side by NewTempID.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// Attachment is a file attached to an entry. Data travels inline as a
// base64 data URL inside the entry JSON.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	DataURL  string `json:"dataUrl"`
}

// JournalEntry is a single diary entry.
type JournalEntry struct {
	ID            string       `json:"id,omitempty"`
	Date          time.Time    `json:"date"`
	Content       string       `json:"content"`
	Mood          Mood         `json:"mood"`
	AIReflection  string       `json:"aiReflection,omitempty"`
	Tags          []string     `json:"tags"`
	Attachments   []Attachment `json:"attachments"`
	Type          string       `json:"type,omitempty"`
	IncludeInFeed bool         `json:"includeInFeed"`
}
