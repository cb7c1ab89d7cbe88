// Package api implements the REST collaborator client for the Mindful
// backend. The backend is treated purely as a resource-oriented JSON API;
// this package owns transport, authentication headers, and status-code to
// error mapping. Collection/state reconciliation lives in the store package.
package api

import (
	"context"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// EntitySummary is the result of asking the backend to extract and persist
// entities (memories) for one journal entry.
type EntitySummary struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Entities struct {
		People   int `json:"people"`
		Events   int `json:"events"`
		Feelings int `json:"feelings"`
	} `json:"entities"`
}

// RankedTask is a task annotated with the backend's contextual relevance.
type RankedTask struct {
	models.Task
	RelevanceScore float64 `json:"relevanceScore"`
}

// SmartFeedResult is the backend's relevance-sorted task feed.
type SmartFeedResult struct {
	Tasks   []RankedTask      `json:"tasks"`
	Context map[string]string `json:"context"`
}

// Client is the surface the synchronizer needs from the backend. The real
// implementation is RESTClient; tests substitute fakes.
type Client interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) error

	ListEntries(ctx context.Context) ([]models.JournalEntry, error)
	CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error)
	UpdateEntry(ctx context.Context, id string, e models.JournalEntry) (models.JournalEntry, error)
	PatchEntry(ctx context.Context, id string, fields map[string]any) (models.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	PatchTask(ctx context.Context, id string, fields map[string]any) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListPosts(ctx context.Context) ([]models.FeedPost, error)
	CreatePost(ctx context.Context, p models.FeedPost) (models.FeedPost, error)
	PatchPost(ctx context.Context, id string, fields map[string]any) (models.FeedPost, error)
	DeletePost(ctx context.Context, id string) error

	ListFriends(ctx context.Context) ([]models.FriendProfile, error)
	CreateFriend(ctx context.Context, f models.FriendProfile) (models.FriendProfile, error)
	UpdateFriend(ctx context.Context, id int, f models.FriendProfile) (models.FriendProfile, error)
	DeleteFriend(ctx context.Context, id int) error

	// GetConfig returns nil when the collaborator holds no config record.
	GetConfig(ctx context.Context) (*models.ContentConfig, error)
	PutConfig(ctx context.Context, cfg models.ContentConfig) (models.ContentConfig, error)

	ProcessEntities(ctx context.Context, entryID string) (EntitySummary, error)
	SmartFeed(ctx context.Context) (SmartFeedResult, error)
}
