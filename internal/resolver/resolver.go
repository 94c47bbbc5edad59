package resolver

import (
	"context"

	"github.com/orgball2608/x-media-resolver/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock.go
type Client interface {
	// Resolve turns a post URL into its downloadable media. Failures carry one
	// of the pkg/errors kinds and a user-facing message.
	Resolve(ctx context.Context, rawURL string) (*domain.ResolutionResult, error)
}
