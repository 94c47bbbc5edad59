package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestFileSaverWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	saver := FileSaver{Dir: dir}

	err := saver.Save(context.Background(), Payload{
		Filename: "DoReMi_Photo_jack_20_1.jpg",
		Body:     strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "DoReMi_Photo_jack_20_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(got))
}

func TestFileSaverRemovesTemporaryFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	saver := FileSaver{Dir: dir}

	err := saver.Save(context.Background(), Payload{Filename: "f.mp4", Body: failingReader{}})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileSaverStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	saver := FileSaver{Dir: dir}

	require.NoError(t, saver.Save(context.Background(), Payload{Filename: "../escape.mp4", Body: strings.NewReader("x")}))
	_, err := os.Stat(filepath.Join(dir, "escape.mp4"))
	assert.NoError(t, err)
}

func TestFileSaverAppendsExtensionForContentType(t *testing.T) {
	dir := t.TempDir()
	saver := FileSaver{Dir: dir}

	require.NoError(t, saver.Save(context.Background(), Payload{
		Filename:    "DoReMi_Video_jack_20",
		ContentType: "video/mp4",
		Body:        strings.NewReader("mp4 bytes"),
	}))
	got, err := os.ReadFile(filepath.Join(dir, "DoReMi_Video_jack_20.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "mp4 bytes", string(got))
}

func TestTargetName(t *testing.T) {
	tests := []struct {
		filename, contentType, want string
	}{
		{"DoReMi_Video_jack_20.mp4", "video/mp4", "DoReMi_Video_jack_20.mp4"},
		{"DoReMi_Photo_jack_20_1.jpg", "image/jpeg", "DoReMi_Photo_jack_20_1.jpg"},
		{"photo.JPEG", "image/jpeg", "photo.JPEG"},
		{"clip", "video/mp4", "clip.mp4"},
		{"clip.jpg", "video/mp4", "clip.jpg.mp4"},
		{"dir/../pic", "image/jpeg", "pic.jpg"},
		{"raw.bin", "", "raw.bin"},
		{"raw.bin", "application/octet-stream", "raw.bin"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetName(tt.filename, tt.contentType), tt.filename)
	}
}

func TestBrowserOpener(t *testing.T) {
	var notice strings.Builder
	var opened string
	o := &BrowserOpener{Notice: &notice, open: func(u string) error { opened = u; return nil }}

	require.NoError(t, o.Open(context.Background(), "https://video.twimg.com/v.mp4"))
	assert.Equal(t, "https://video.twimg.com/v.mp4", opened)
	assert.Contains(t, notice.String(), "https://video.twimg.com/v.mp4")
}

func TestBrowserOpenerIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var opened string
	o := &BrowserOpener{open: func(u string) error { opened = u; return nil }}

	require.NoError(t, o.Open(ctx, "https://video.twimg.com/v.mp4"))
	assert.Equal(t, "https://video.twimg.com/v.mp4", opened)
}
