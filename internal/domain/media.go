package domain

type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypePhoto MediaType = "photo"
)

// PostReference is what the resolver derives from user input before any
// network call: the raw string, the query-stripped URL and the final path segment.
type PostReference struct {
	Raw        string
	Normalized string
	ID         string
}

// MediaAsset is a single downloadable item of a resolved post.
type MediaAsset struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	Thumbnail *string   `json:"thumbnail,omitempty"` // videos only
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
}

func (m MediaAsset) IsVideo() bool {
	return m.Type == MediaTypeVideo
}

// ResolutionResult is built fresh per request and never mutated afterwards.
type ResolutionResult struct {
	Author   string
	Username string
	Text     string
	Media    []MediaAsset
}
