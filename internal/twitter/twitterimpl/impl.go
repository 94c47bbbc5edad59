package twitterimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/orgball2608/x-media-resolver/internal/twitter"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

type TwitterImpl struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     logger.Logger
}

var _ twitter.Client = (*TwitterImpl)(nil)

func New(opts Opts) *TwitterImpl {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TwitterImpl{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.Config.Upstream.BaseURL, "/"),
		userAgent:  opts.Config.Upstream.UserAgent,
		logger:     opts.Logger.WithComponent("TwitterClient"),
	}
}

// StatusURL is the metadata endpoint for a post identifier.
func (t *TwitterImpl) StatusURL(id string) string {
	return fmt.Sprintf("%s/i/status/%s", t.baseURL, url.PathEscape(id))
}

func (t *TwitterImpl) GetStatus(ctx context.Context, id string) (*twitter.StatusResponse, error) {
	apiURL := t.StatusURL(id)
	t.logger.Info("Fetching status metadata", "url", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to metadata provider failed: %w", err)
	}
	defer safeClose(resp.Body, t.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.logger.Warn("Metadata provider returned non-success status", "id", id, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", twitter.ErrStatusNotFound, resp.StatusCode)
	}

	var status twitter.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("could not decode status response: %w", err)
	}

	return &status, nil
}

func safeClose(closer io.Closer, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
