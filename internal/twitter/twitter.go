package twitter

import (
	"context"
	"errors"
)

// ErrStatusNotFound is returned when the metadata provider answers with a
// non-success status, which it does for deleted, private and unknown posts.
var ErrStatusNotFound = errors.New("status not found or private")

//go:generate go run go.uber.org/mock/mockgen -source=twitter.go -destination=mocks/mock.go
type Client interface {
	// GetStatus fetches the metadata of a single post by its identifier.
	GetStatus(ctx context.Context, id string) (*StatusResponse, error)
}

// StatusResponse mirrors the provider's document. Tweet is absent on some
// error payloads even with a 2xx status.
type StatusResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Tweet   *Tweet `json:"tweet"`
}

type Tweet struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Text   string `json:"text"`
	Author Author `json:"author"`
	Media  *Media `json:"media"`
}

type Author struct {
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

type Media struct {
	Videos []Video `json:"videos"`
	Photos []Photo `json:"photos"`
}

type Video struct {
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Duration     float64   `json:"duration"`
	Variants     []Variant `json:"variants"`
}

// Variant is one encoding of a video. Bitrate is missing for playlists.
type Variant struct {
	ContentType string `json:"content_type"`
	Bitrate     *int64 `json:"bitrate"`
	URL         string `json:"url"`
}

type Photo struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
