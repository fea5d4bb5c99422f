package telegram

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type sentMessage struct {
	to   string
	what interface{}
}

type fakeBot struct {
	sent []sentMessage
	err  error
}

func (b *fakeBot) Send(to tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	b.sent = append(b.sent, sentMessage{to: to.Recipient(), what: what})
	if b.err != nil {
		return nil, b.err
	}
	return &tele.Message{Text: what.(string)}, nil
}

func TestSvc_SendMessage(t *testing.T) {
	bot := &fakeBot{}
	s := newService(bot, "123456")

	err := s.SendMessage("hello")
	require.NoError(t, err)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "123456", bot.sent[0].to)
	assert.Equal(t, "hello", bot.sent[0].what)
}

func TestSvc_SendMessage_ChannelUsername(t *testing.T) {
	bot := &fakeBot{}
	s := newService(bot, "@homework_channel")

	require.NoError(t, s.SendMessage("hello"))
	assert.Equal(t, "@homework_channel", bot.sent[0].to)
}

func TestSvc_SendMessage_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "network", err: errors.New("dial tcp: connection refused")},
		{name: "blocked", err: tele.ErrBlockedByUser},
		{name: "chat not found", err: tele.ErrChatNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &fakeBot{err: tt.err}
			s := newService(bot, "123456")

			err := s.SendMessage("hello")
			assert.ErrorIs(t, err, ierrors.ErrNotification)
			assert.Len(t, bot.sent, 1)
		})
	}
}

func TestSvc_SendMessage_NoDeduplication(t *testing.T) {
	bot := &fakeBot{}
	s := newService(bot, "123456")

	require.NoError(t, s.SendMessage("same"))
	require.NoError(t, s.SendMessage("same"))
	assert.Len(t, bot.sent, 2)
}

func TestNewService_UnreachableAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiURL := server.URL
	server.Close()

	s, err := NewService(config.Telegram{
		BotToken:       "123:abc",
		ChatID:         "42",
		APIURL:         apiURL,
		RequestTimeout: time.Second,
	})
	require.NoError(t, err)

	err = s.SendMessage("hello")
	assert.ErrorIs(t, err, ierrors.ErrNotification)
}

func TestNewService_UnavailableAPI(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s, err := NewService(config.Telegram{
		BotToken:       "123:abc",
		ChatID:         "42",
		APIURL:         server.URL,
		RequestTimeout: time.Second,
	})
	require.NoError(t, err)
	assert.Zero(t, requests.Load())

	err = s.SendMessage("hello")
	assert.ErrorIs(t, err, ierrors.ErrNotification)
	assert.Equal(t, int32(1), requests.Load())
}
