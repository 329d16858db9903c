package bot

import "github.com/WorkerOfYear/jeopardy/internal/telegram"

// TelegramTransport adapts the Bot API client to the Transport
// interface.
type TelegramTransport struct {
	client *telegram.Client
}

func NewTelegramTransport(client *telegram.Client) *TelegramTransport {
	return &TelegramTransport{client: client}
}

func (t *TelegramTransport) Send(chatID int64, text string, replyMarkup interface{}) (int64, error) {
	return t.client.SendMessage(chatID, text, replyMarkup)
}

func (t *TelegramTransport) Edit(chatID, messageID int64, text string, replyMarkup interface{}) error {
	return t.client.EditMessageText(chatID, messageID, text, replyMarkup)
}

func (t *TelegramTransport) Ack(callbackID string) error {
	return t.client.AnswerCallbackQuery(callbackID, "", false)
}
