package models

// OutputFormat selects the media kind generated for feed posts.
type OutputFormat string

const (
	OutputFormatImage OutputFormat = "IMAGE"
	OutputFormatVideo OutputFormat = "VIDEO"
)

// ContentConfigID is the fixed identifier of the singleton config record.
const ContentConfigID = 1

// ContentConfig is the singleton content-generation configuration. Updates
// are always full-record replacements against ContentConfigID.
type ContentConfig struct {
	ID           int          `json:"id,omitempty"`
	ArtStyle     string       `json:"artStyle"`
	CaptionTone  string       `json:"captionTone"`
	IncludeAudio bool         `json:"includeAudio"`
	OutputFormat OutputFormat `json:"outputFormat"`
}

// DefaultContentConfig returns the documented fallback used when the
// collaborator has no config record yet. The literals must match the
// collaborator's model defaults.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		ID:           ContentConfigID,
		ArtStyle:     "Abstract & Dreamy",
		CaptionTone:  "Reflective & Poetic",
		IncludeAudio: true,
		OutputFormat: OutputFormatImage,
	}
}
