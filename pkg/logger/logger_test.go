package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "development", Output: &buf})

	log.WithComponent("Resolver").Info("Resolving post", "id", "123")

	out := buf.String()
	assert.Contains(t, out, "Resolving post")
	assert.Contains(t, out, "component=Resolver")
	assert.Contains(t, out, "id=123")
}

func TestProductionSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.Debug("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
