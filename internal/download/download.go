package download

import (
	"context"
	"errors"
	"io"
)

var (
	ErrBadStatus       = errors.New("media host returned non-success status")
	ErrPayloadTooSmall = errors.New("payload too small, might be corrupted")
)

type Outcome int

const (
	// OutcomeSaved means the payload reached the Saver.
	OutcomeSaved Outcome = iota
	// OutcomeOpened means the automated save failed and the URL was handed to the Opener.
	OutcomeOpened
	// OutcomeAbandoned means both the save and the fallback failed.
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeOpened:
		return "opened"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Result reports how a download settled. Size is the saved payload length.
// Cause holds the failure that sent the download to the fallback path, if any.
type Result struct {
	Outcome Outcome
	Size    int64
	Cause   error
}

// Payload is a fully read media body ready to be saved under Filename.
// ContentType is the re-tagged type derived from Filename, not the host's header.
type Payload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

//go:generate go run go.uber.org/mock/mockgen -source=download.go -destination=mocks/mock.go
type Client interface {
	// Download fetches mediaURL and saves it as filename, falling back to
	// opening mediaURL directly on any failure. It never returns an error.
	Download(ctx context.Context, mediaURL, filename string) Result
}

// Saver is the local-save trigger.
type Saver interface {
	Save(ctx context.Context, payload Payload) error
}

// Opener hands a media URL to the user for manual saving.
type Opener interface {
	Open(ctx context.Context, mediaURL string) error
}

type SaverFunc func(ctx context.Context, payload Payload) error

func (f SaverFunc) Save(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

type OpenerFunc func(ctx context.Context, mediaURL string) error

func (f OpenerFunc) Open(ctx context.Context, mediaURL string) error {
	return f(ctx, mediaURL)
}

// Factory builds Clients bound to a particular save target and fallback.
type Factory interface {
	New(saver Saver, opener Opener) Client
}
