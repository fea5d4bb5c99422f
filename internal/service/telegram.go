package service

type Telegram interface {
	SendMessage(message string) error
}
