package telegram

// recipient lets telebot address a chat by a numeric id or by an @username.
type recipient struct {
	chatID string
}

func (r *recipient) Recipient() string {
	return r.chatID
}
