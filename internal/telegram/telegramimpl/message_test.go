package telegramimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/orgball2608/x-media-resolver/pkg/retry"
	"github.com/stretchr/testify/assert"
)

func TestClassifySendError(t *testing.T) {
	cfg := retry.Config{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
	}

	tests := []struct {
		name     string
		err      error
		attempts int
	}{
		{"file too big", &tgbotapi.Error{Code: 400, Message: "Bad Request: file is too big"}, 1},
		{"bot blocked", &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}, 1},
		{"rate limited", &tgbotapi.Error{Code: 429, Message: "Too Many Requests: retry after 1"}, 3},
		{"server error", &tgbotapi.Error{Code: 502, Message: "Bad Gateway"}, 3},
		{"transport", errors.New("connection reset by peer"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := retry.Do(context.Background(), logger.NewNop(), "SendDocument", func() error {
				attempts++
				return classifySendError(tt.err)
			}, cfg)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.attempts, attempts)
		})
	}
}

func TestClassifySendErrorNil(t *testing.T) {
	assert.NoError(t, classifySendError(nil))
}
