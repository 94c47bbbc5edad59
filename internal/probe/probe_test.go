package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = srv.URL
	p := newProbe(cfg, logger.NewNop(), srv.Client())

	state, checkedAt := p.Upstream()
	assert.Equal(t, StateUnknown, state)
	assert.True(t, checkedAt.IsZero())

	assert.Equal(t, StateReachable, p.Check(context.Background()))
	state, checkedAt = p.Upstream()
	assert.Equal(t, StateReachable, state)
	assert.False(t, checkedAt.IsZero())

	srv.Close()
	assert.Equal(t, StateUnreachable, p.Check(context.Background()))
}
