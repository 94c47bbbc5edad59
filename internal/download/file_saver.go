package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extensionsByType lists the accepted extensions per payload type; the first
// is appended when a filename carries none of them.
var extensionsByType = map[string][]string{
	"video/mp4":  {".mp4"},
	"image/jpeg": {".jpg", ".jpeg"},
}

// FileSaver writes payloads into Dir. The body goes to a temporary file
// first and is renamed into place only once fully written. The stored name
// always ends in an extension matching the payload content type.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(ctx context.Context, payload Payload) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("could not create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".partial-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, payload.Body); err != nil {
		return fmt.Errorf("could not write payload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file: %w", err)
	}

	target := filepath.Join(s.Dir, TargetName(payload.Filename, payload.ContentType))
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("could not move file into place: %w", err)
	}
	return nil
}

// TargetName strips directories from filename and appends the extension of
// contentType when the name does not already end in one. Unknown content
// types leave the name as is.
func TargetName(filename, contentType string) string {
	name := filepath.Base(filename)
	exts, ok := extensionsByType[strings.ToLower(contentType)]
	if !ok {
		return name
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return name
		}
	}
	return name + exts[0]
}
