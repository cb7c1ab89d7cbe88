package ai

import "github.com/mindfulapp/mindful/internal/client/models"

// EntryAnalysis is the structured reflection for one journal entry.
type EntryAnalysis struct {
	Sentiment  string   `json:"sentiment"`
	Reflection string   `json:"reflection"`
	Tags       []string `json:"tags"`
}

// StudyTask is one task suggested by the study planner.
type StudyTask struct {
	Title    string          `json:"title"`
	Priority models.Priority `json:"priority"`
	Subject  string          `json:"subject"`
}

// StudyPlan is the planner output for a goal/timeframe pair.
type StudyPlan struct {
	Tasks []StudyTask `json:"tasks"`
}

// PostContent is generated feed-post material for an entry.
type PostContent struct {
	VisualPrompt string `json:"visualPrompt"`
	Caption      string `json:"caption"`
}

// Person, Event and Feeling are entities extracted from an entry.
type Person struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Sentiment    string `json:"sentiment"`
	Context      string `json:"context"`
}

type Event struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Date     *string `json:"date"`
	Context  string  `json:"context"`
}

type Feeling struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
	RootCause string `json:"root_cause"`
}

// Extraction is the full entity-extraction result. Absent keys decode to
// empty slices via Normalize.
type Extraction struct {
	People   []Person  `json:"people"`
	Events   []Event   `json:"events"`
	Feelings []Feeling `json:"feelings"`
}

// Normalize replaces nil slices with empty ones so callers can range safely.
func (e *Extraction) Normalize() {
	if e.People == nil {
		e.People = []Person{}
	}
	if e.Events == nil {
		e.Events = []Event{}
	}
	if e.Feelings == nil {
		e.Feelings = []Feeling{}
	}
}

// Total returns the number of extracted entities of all kinds.
func (e *Extraction) Total() int {
	return len(e.People) + len(e.Events) + len(e.Feelings)
}

// ChatMessage is one turn of a friend conversation. Role is "user" or
// "model".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
