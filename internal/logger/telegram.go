package logger

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramClient is a BotClient backed by the Telegram bot API
type TelegramClient struct {
	api *tgbotapi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize log bot: %w", err)
	}

	return &TelegramClient{api: api}, nil
}

func (c *TelegramClient) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to %d: %w", chatID, err)
	}
	return nil
}
