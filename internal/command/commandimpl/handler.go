package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = `👋 Welcome to the X media downloader!

Send me a link to a post on x.com or twitter.com and I will send back its video or photos.

/resolve <post_url> - Download the media of a post.
/help - Show this guide.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil {
					return
				}

				from := ""
				if u.Message.From != nil {
					from = u.Message.From.UserName
				}
				c.Logger.Info("Message received", "from", from, "text", u.Message.Text)

				if err := c.processMessage(ctx, u.Message); err != nil {
					c.Logger.Error("Error processing message", "chatID", u.Message.Chat.ID, "error", err)
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processMessage(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			_, err := c.Telegram.SendMessage(chatID, helpMessage)
			return err
		case "resolve":
			postURL := strings.TrimSpace(msg.CommandArguments())
			if postURL == "" {
				_, err := c.Telegram.SendMessage(chatID, "Please provide a post URL: /resolve <post_url>")
				return err
			}
			return c.handleResolve(ctx, chatID, postURL)
		default:
			_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
			return err
		}
	}

	postURL := extractURL(msg.Text)
	if postURL == "" {
		_, err := c.Telegram.SendMessage(chatID, "Send me a link to a post on x.com or twitter.com.")
		return err
	}
	return c.handleResolve(ctx, chatID, postURL)
}

// extractURL picks the first link-looking word out of free text.
func extractURL(text string) string {
	for _, field := range strings.Fields(text) {
		if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
			return field
		}
	}
	return ""
}
