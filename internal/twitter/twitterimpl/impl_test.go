package twitterimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/x-media-resolver/internal/twitter"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusBody = `{
  "code": 200,
  "message": "OK",
  "tweet": {
    "id": "1234567890",
    "text": "look at this",
    "author": {"name": "Jack", "screen_name": "jack"},
    "media": {
      "videos": [{
        "url": "https://video.twimg.com/default.mp4",
        "thumbnail_url": "https://pbs.twimg.com/thumb.jpg",
        "width": 1280,
        "height": 720,
        "variants": [
          {"content_type": "application/x-mpegURL", "url": "https://video.twimg.com/pl.m3u8"},
          {"content_type": "video/mp4", "bitrate": 2176000, "url": "https://video.twimg.com/720.mp4"}
        ]
      }]
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *TwitterImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = srv.URL + "/"
	cfg.Upstream.UserAgent = "test-agent"

	return New(Opts{Config: cfg, Logger: logger.NewNop(), HTTPClient: srv.Client()})
}

func TestGetStatusDecodesDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/i/status/1234567890", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statusBody))
	})

	status, err := client.GetStatus(context.Background(), "1234567890")
	require.NoError(t, err)
	require.NotNil(t, status.Tweet)

	tweet := status.Tweet
	assert.Equal(t, "jack", tweet.Author.ScreenName)
	assert.Equal(t, "Jack", tweet.Author.Name)
	require.NotNil(t, tweet.Media)
	require.Len(t, tweet.Media.Videos, 1)

	video := tweet.Media.Videos[0]
	assert.Equal(t, "https://video.twimg.com/default.mp4", video.URL)
	require.Len(t, video.Variants, 2)
	assert.Nil(t, video.Variants[0].Bitrate)
	require.NotNil(t, video.Variants[1].Bitrate)
	assert.Equal(t, int64(2176000), *video.Variants[1].Bitrate)
}

func TestGetStatusNonSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetStatus(context.Background(), "404")
	assert.ErrorIs(t, err, twitter.ErrStatusNotFound)
}

func TestGetStatusBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := client.GetStatus(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, twitter.ErrStatusNotFound)
}

func TestGetStatusTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = base
	client := New(Opts{Config: cfg, Logger: logger.NewNop()})

	_, err := client.GetStatus(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, twitter.ErrStatusNotFound)
}

func TestStatusURLEscapesIdentifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upstream.BaseURL = "https://api.fxtwitter.com"
	client := New(Opts{Config: cfg, Logger: logger.NewNop()})

	assert.Equal(t, "https://api.fxtwitter.com/i/status/123", client.StatusURL("123"))
	assert.Equal(t, "https://api.fxtwitter.com/i/status/a%20b", client.StatusURL("a b"))
}
