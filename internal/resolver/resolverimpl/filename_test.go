package resolverimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenames(t *testing.T) {
	assert.Equal(t, "DoReMi_Video_jack_20.mp4", VideoFilename("DoReMi", "jack", "20"))
	assert.Equal(t, "DoReMi_Video_jack_20_2.mp4", IndexedVideoFilename("DoReMi", "jack", "20", 2))
	assert.Equal(t, "DoReMi_Photo_jack_20_1.jpg", PhotoFilename("DoReMi", "jack", "20", 1))
	assert.Equal(t, PhotoFilename("X", "a", "1", 3), PhotoFilename("X", "a", "1", 3))
}
