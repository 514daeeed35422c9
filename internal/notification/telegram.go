package notification

import (
	"context"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSink delivers messages through a Telegram bot. With an empty token
// the sink stays constructed but disabled, so wiring does not depend on the
// bot being configured.
type TelegramSink struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSink(token string) (*TelegramSink, error) {
	if token == "" {
		log.Println("[Telegram] bot token is empty, telegram notifications disabled")
		return &TelegramSink{bot: nil}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSink{bot: bot}, nil
}

// Notify treats the recipient as a chat id. Anything that prevents delivery
// is swallowed after logging; telegram is a best-effort channel.
func (s *TelegramSink) Notify(ctx context.Context, recipient, message, channel string) error {
	if s.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return nil
	}

	chatID, err := strconv.ParseInt(recipient, 10, 64)
	if err != nil {
		log.Printf("[Telegram] skipping %s message, recipient %q is not a chat id", channel, recipient)
		return nil
	}

	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, message)); err != nil {
		log.Printf("[Telegram] send to chat %d failed: %v", chatID, err)
	}
	return nil
}
