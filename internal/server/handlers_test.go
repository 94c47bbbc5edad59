package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/x-media-resolver/internal/domain"
	"github.com/orgball2608/x-media-resolver/internal/probe"
	mock_resolver "github.com/orgball2608/x-media-resolver/internal/resolver/mocks"
	"github.com/orgball2608/x-media-resolver/pkg/errors"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedProbe struct {
	state probe.State
	at    time.Time
}

func (f fixedProbe) Upstream() (probe.State, time.Time) { return f.state, f.at }

func newTestServer(t *testing.T) (http.Handler, *mock_resolver.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	res := mock_resolver.NewMockClient(ctrl)
	s := NewHandlerServer(res, fixedProbe{state: probe.StateReachable, at: time.Unix(1700000000, 0)}, logger.NewNop())
	return s.Handler(), res
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestResolveSuccess(t *testing.T) {
	h, res := newTestServer(t)
	thumb := "https://pbs.twimg.com/thumb.jpg"
	res.EXPECT().Resolve(gomock.Any(), "https://x.com/jack/status/20").Return(&domain.ResolutionResult{
		Author:   "Jack",
		Username: "jack",
		Text:     "hello",
		Media: []domain.MediaAsset{{
			Type:      domain.MediaTypeVideo,
			URL:       "https://video.twimg.com/720.mp4",
			Filename:  "DoReMi_Video_jack_20.mp4",
			Thumbnail: &thumb,
		}},
	}, nil)

	rec := post(h, `{"url":"https://x.com/jack/status/20"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Jack", body["author"])
	assert.Equal(t, "jack", body["username"])
	assert.Equal(t, "hello", body["text"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	item := data[0].(map[string]any)
	assert.Equal(t, "video", item["type"])
	assert.Equal(t, "https://video.twimg.com/720.mp4", item["url"])
	assert.Equal(t, "DoReMi_Video_jack_20.mp4", item["filename"])
	assert.Equal(t, thumb, item["thumbnail"])
}

func TestResolveFailureStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid", errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, "Invalid URL. Please enter a valid X or Twitter link."), http.StatusBadRequest, "Invalid URL. Please enter a valid X or Twitter link."},
		{"not found", errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Tweet not found or private."), http.StatusNotFound, "Tweet not found or private."},
		{"no media", errors.WrapWithCode(errors.ErrNoMedia, errors.CodeNoMedia, "No media found in this tweet."), http.StatusBadRequest, "No media found in this tweet."},
		{"no downloadable", errors.WrapWithCode(errors.ErrNoDownloadableMedia, errors.CodeNoDownloadableMedia, "No downloadable media found."), http.StatusBadRequest, "No downloadable media found."},
		{"internal", errors.WrapWithCode(errors.ErrInternalServer, errors.CodeInternal, errors.DefaultMessage), http.StatusInternalServerError, errors.DefaultMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, res := newTestServer(t)
			res.EXPECT().Resolve(gomock.Any(), "u").Return(nil, tt.err)

			rec := post(h, `{"url":"u"}`)
			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestResolveMalformedBody(t *testing.T) {
	h, _ := newTestServer(t)

	rec := post(h, `{"url":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveRejectsGet(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resolve", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "reachable", body["upstream"])
	assert.NotEmpty(t, body["checked_at"])
}
