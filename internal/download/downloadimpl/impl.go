package downloadimpl

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/orgball2608/x-media-resolver/internal/download"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
)

const (
	DefaultMinBytes int64 = 1000
	DefaultAccept         = "video/mp4,video/*;q=0.9,*/*;q=0.8"

	videoContentType = "video/mp4"
	photoContentType = "image/jpeg"
)

type Settings struct {
	// MinBytes is the corruption floor: smaller payloads are rejected.
	MinBytes int64
	Accept   string
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		MinBytes: cfg.Download.MinBytes,
		Accept:   cfg.Download.Accept,
	}
}

// ProgressFunc returns a writer that observes the body as it is read.
// size is -1 when the host does not announce a length.
type ProgressFunc func(size int64, filename string) io.Writer

type Opts struct {
	Settings   Settings
	Saver      download.Saver
	Opener     download.Opener
	Logger     logger.Logger
	HTTPClient *http.Client
	Progress   ProgressFunc
}

type DownloadImpl struct {
	settings   Settings
	saver      download.Saver
	opener     download.Opener
	logger     logger.Logger
	httpClient *http.Client
	progress   ProgressFunc
}

var _ download.Client = (*DownloadImpl)(nil)

func New(opts Opts) *DownloadImpl {
	settings := opts.Settings
	if settings.MinBytes <= 0 {
		settings.MinBytes = DefaultMinBytes
	}
	if settings.Accept == "" {
		settings.Accept = DefaultAccept
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DownloadImpl{
		settings:   settings,
		saver:      opts.Saver,
		opener:     opts.Opener,
		logger:     opts.Logger.WithComponent("DownloadClient"),
		httpClient: httpClient,
		progress:   opts.Progress,
	}
}

func (d *DownloadImpl) Download(ctx context.Context, mediaURL, filename string) download.Result {
	size, err := d.fetchAndSave(ctx, mediaURL, filename)
	if err == nil {
		d.logger.Info("Media saved", "filename", filename, "size", size)
		return download.Result{Outcome: download.OutcomeSaved, Size: size}
	}

	d.logger.Warn("Download failed, falling back to direct link", "url", mediaURL, "filename", filename, "error", err)

	// The fallback must run even when the fetch was cut short by cancellation.
	if openErr := d.open(context.WithoutCancel(ctx), mediaURL); openErr != nil {
		d.logger.Error("Fallback open failed", "url", mediaURL, "error", openErr)
		return download.Result{Outcome: download.OutcomeAbandoned, Cause: stderrors.Join(err, openErr)}
	}
	return download.Result{Outcome: download.OutcomeOpened, Cause: err}
}

func (d *DownloadImpl) fetchAndSave(ctx context.Context, mediaURL, filename string) (size int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during download: %v", r)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", d.settings.Accept)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("could not fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", download.ErrBadStatus, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if d.progress != nil {
		if w := d.progress(resp.ContentLength, filename); w != nil {
			body = io.TeeReader(resp.Body, w)
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return 0, fmt.Errorf("could not read media body: %w", err)
	}
	if int64(len(data)) < d.settings.MinBytes {
		return 0, fmt.Errorf("%w: %d bytes", download.ErrPayloadTooSmall, len(data))
	}

	size = int64(len(data))
	if err := d.saver.Save(ctx, download.Payload{
		Filename:    filename,
		ContentType: ContentTypeFor(filename),
		Size:        size,
		Body:        bytes.NewReader(data),
	}); err != nil {
		return 0, err
	}
	return size, nil
}

func (d *DownloadImpl) open(ctx context.Context, mediaURL string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during fallback: %v", r)
		}
	}()
	return d.opener.Open(ctx, mediaURL)
}

// ContentTypeFor re-tags a payload by its synthesized filename. Everything
// that is not a .jpg photo is treated as MP4 video.
func ContentTypeFor(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".jpg") {
		return photoContentType
	}
	return videoContentType
}
