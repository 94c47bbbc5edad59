package telegramimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-media-resolver/pkg/retry"
)

// SendMessage sends a message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Debug("Message sent",
		"chatID", chatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}

// EditMessageText replaces the text of a message the bot sent earlier
func (tg *TelegramImpl) EditMessageText(chatID int64, messageID int, newText string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, newText)
	edit.DisableWebPagePreview = true
	if _, err := tg.TgBot.Send(edit); err != nil {
		tg.Logger.Error("Error editing message",
			"chatID", chatID,
			"messageID", messageID,
			"error", err)
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// SendDocument uploads data as a document. The body is buffered by the
// caller, so a failed attempt can be retried from the start when data is seekable.
func (tg *TelegramImpl) SendDocument(ctx context.Context, chatID int64, filename string, data io.Reader) error {
	send := func() error {
		if seeker, ok := data.(io.Seeker); ok {
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return retry.Permanent(err)
			}
		}
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{Name: filename, Reader: data})
		_, err := tg.TgBot.Send(doc)
		if err != nil {
			if _, ok := data.(io.Seeker); !ok {
				return retry.Permanent(err)
			}
		}
		return classifySendError(err)
	}

	if err := retry.Do(ctx, tg.Logger, "SendDocument", send, retry.DefaultConfig()); err != nil {
		tg.Logger.Error("Error sending document",
			"chatID", chatID,
			"filename", filename,
			"error", err)
		return fmt.Errorf("failed to send document %s: %w", filename, err)
	}

	tg.Logger.Info("Document sent", "chatID", chatID, "filename", filename)
	return nil
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

// StopReceivingUpdates stops the long-polling loop
func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}

// classifySendError stops retries on Telegram client errors such as
// "file is too big". Rate limiting (429) is still retried.
func classifySendError(err error) error {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) && tgErr.Code >= 400 && tgErr.Code < 500 && tgErr.Code != http.StatusTooManyRequests {
		return retry.Permanent(err)
	}
	return err
}
