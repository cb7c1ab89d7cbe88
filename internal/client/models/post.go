package models

import "time"

// FeedPost is a generated social-feed item derived from a journal entry.
type FeedPost struct {
	ID        string    `json:"id,omitempty"`
	EntryID   string    `json:"entryId"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	MoodTag   string    `json:"moodTag"`
	AudioData string    `json:"audioData,omitempty"`
}
