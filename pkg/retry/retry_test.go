package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.NewNop(), "flaky", func() error {
		calls++
		if calls < 2 {
			return errors.New("temporary")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.NewNop(), "broken", func() error {
		calls++
		return errors.New("always")
	}, fastConfig())

	assert.EqualError(t, err, "always")
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnPermanent(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.NewNop(), "rejected", func() error {
		calls++
		return Permanent(errors.New("bad request"))
	}, fastConfig())

	assert.EqualError(t, err, "bad request")
	assert.Equal(t, 1, calls)
}
