package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/orgball2608/x-media-resolver/internal/domain"
	"github.com/orgball2608/x-media-resolver/internal/download"
	apperrors "github.com/orgball2608/x-media-resolver/pkg/errors"
	"github.com/orgball2608/x-media-resolver/pkg/formatter"
)

// Telegram rejects bot uploads above 50 MB.
const maxUploadBytes = 50 << 20

// Post text is clipped so the status message stays well under the 4096 character cap.
const maxSummaryText = 1000

var errTooLargeForUpload = errors.New("file exceeds the Telegram upload limit")

func (c *CommandImpl) handleResolve(ctx context.Context, chatID int64, postURL string) error {
	var lookup domain.Lookup
	if err := lookup.Start(); err != nil {
		return err
	}

	statusID, err := c.Telegram.SendMessage(chatID, "Looking up the post... ⏳")
	if err != nil {
		return fmt.Errorf("failed to send initial message: %w", err)
	}

	result, err := c.Resolver.Resolve(ctx, postURL)
	if err != nil {
		_ = lookup.Fail(apperrors.GetMessage(err))
		return c.Telegram.EditMessageText(chatID, statusID, "❌ "+lookup.Error)
	}
	if err := lookup.Succeed(result); err != nil {
		return err
	}

	if err := c.Telegram.EditMessageText(chatID, statusID, summary(result)); err != nil {
		c.Logger.Warn("Could not update status message", "chatID", chatID, "error", err)
	}

	saved, opened := c.deliver(ctx, chatID, result.Media)
	c.Logger.Info("Delivery finished", "chatID", chatID, "saved", saved, "opened", opened, "total", len(result.Media))
	return nil
}

// deliver downloads every asset concurrently, one in-progress flag per list
// position, and reports how many were uploaded and how many fell back to links.
func (c *CommandImpl) deliver(ctx context.Context, chatID int64, media []domain.MediaAsset) (saved, opened int) {
	var (
		tracker  download.Tracker
		wg       sync.WaitGroup
		nSaved   atomic.Int32
		nOpened  atomic.Int32
		saver    = c.chatSaver(chatID)
		opener   = c.chatOpener(chatID)
		delivery = c.Downloads.New(saver, opener)
	)

	for i, asset := range media {
		wg.Add(1)
		go func(i int, asset domain.MediaAsset) {
			defer wg.Done()
			tracker.Track(i, func() {
				res := delivery.Download(ctx, asset.URL, asset.Filename)
				switch res.Outcome {
				case download.OutcomeSaved:
					nSaved.Add(1)
				case download.OutcomeOpened:
					nOpened.Add(1)
				}
			})
		}(i, asset)
	}
	wg.Wait()

	return int(nSaved.Load()), int(nOpened.Load())
}

func (c *CommandImpl) chatSaver(chatID int64) download.Saver {
	return download.SaverFunc(func(ctx context.Context, p download.Payload) error {
		if p.Size > maxUploadBytes {
			return fmt.Errorf("%w: %s", errTooLargeForUpload, formatter.FormatBytes(p.Size))
		}
		return c.Telegram.SendDocument(ctx, chatID, download.TargetName(p.Filename, p.ContentType), p.Body)
	})
}

func (c *CommandImpl) chatOpener(chatID int64) download.Opener {
	return download.OpenerFunc(func(_ context.Context, mediaURL string) error {
		_, err := c.Telegram.SendMessage(chatID, "Could not upload this file automatically. Open it and save it manually:\n"+mediaURL)
		return err
	})
}

func summary(r *domain.ResolutionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ %s (@%s)\n", r.Author, r.Username)
	if r.Text != "" {
		b.WriteString(formatter.Truncate(r.Text, maxSummaryText))
		b.WriteString("\n")
	}

	videos := 0
	for _, m := range r.Media {
		if m.IsVideo() {
			videos++
		}
	}
	switch {
	case videos > 0:
		fmt.Fprintf(&b, "\nSending %d video(s)...", videos)
	default:
		fmt.Fprintf(&b, "\nSending %d photo(s)...", len(r.Media))
	}
	return b.String()
}
