package download

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// BrowserOpener opens media URLs in the system browser. The URL is also
// printed to Notice, if set, so headless users can copy it.
type BrowserOpener struct {
	Notice io.Writer
	open   func(url string) error
}

func NewBrowserOpener(notice io.Writer) *BrowserOpener {
	return &BrowserOpener{Notice: notice, open: browser.OpenURL}
}

func (o *BrowserOpener) Open(_ context.Context, mediaURL string) error {
	if o.Notice != nil {
		fmt.Fprintf(o.Notice, "Could not save automatically, open manually: %s\n", mediaURL)
	}
	open := o.open
	if open == nil {
		open = browser.OpenURL
	}
	return open(mediaURL)
}
