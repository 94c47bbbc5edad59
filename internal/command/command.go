package command

import "context"

type Client interface {
	// HandleCommand consumes chat updates until ctx is cancelled.
	HandleCommand(ctx context.Context) error
}
