package models

// FriendProfile is an AI companion persona. Unlike the other resources the
// collaborator serializes friend ids as numbers, so ID is an int here.
type FriendProfile struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Context     string `json:"context"`
	VoiceName   string `json:"voiceName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}
