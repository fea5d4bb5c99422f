package telegram

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type svc struct {
	bot  sender
	chat *recipient
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	return newService(bot, cfg.ChatID), nil
}

func newService(bot sender, chatID string) *svc {
	return &svc{
		bot:  bot,
		chat: &recipient{chatID: chatID},
	}
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	// the bot only sends messages, so it is created without the getMe call
	// and an unreachable api shows up on the first send
	pref := tele.Settings{
		URL:     cfg.APIURL,
		Token:   cfg.BotToken,
		Client:  &http.Client{Timeout: cfg.RequestTimeout},
		Offline: true,
		OnError: func(err error, _ tele.Context) {
			log.Error().Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

// SendMessage delivers the message to the configured chat. Delivery
// failures are logged here, the returned error is informational only.
func (s *svc) SendMessage(message string) error {
	log.Debug().Str("chat", s.chat.chatID).Msg("sending telegram message")

	_, err := s.bot.Send(s.chat, message)
	if err != nil {
		s.middlewareError(err)
		return fmt.Errorf("%w: bot.Send: %v", ierrors.ErrNotification, err)
	}

	log.Debug().Str("chat", s.chat.chatID).Msg("telegram message sent")
	return nil
}

func (s *svc) middlewareError(err error) {
	if errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrUserIsDeactivated) ||
		errors.Is(err, tele.ErrNotStartedByUser) ||
		errors.Is(err, tele.ErrChatNotFound) {
		log.Warn().Str("chat", s.chat.chatID).
			Msgf("chat is unreachable for the bot, check TELEGRAM_CHAT_ID: %v", err)
	}

	log.Error().Str("chat", s.chat.chatID).Msgf("sending telegram message failed: %v", err)
}
