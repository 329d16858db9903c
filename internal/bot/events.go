package bot

import (
	"strings"

	"github.com/WorkerOfYear/jeopardy/internal/telegram"
)

// Chat identifies the group the event came from.
type Chat struct {
	ID int64
}

// Sender is the acting participant's external identity.
type Sender struct {
	TelegramID int64
	Username   string
}

// Event is an inbound chat event. Exactly one of the variants below is
// produced per Telegram update; anything else is dropped at decode.
type Event interface {
	event()
}

// TextCommand is a slash command, e.g. "/start".
type TextCommand struct {
	Chat    Chat
	Sender  Sender
	Command string
}

// TextMessage is a plain text message.
type TextMessage struct {
	Chat   Chat
	Sender Sender
	Text   string
}

// ButtonCallback is an inline button press carrying an action token.
// CallbackID is echoed back to Telegram to dismiss the button spinner.
type ButtonCallback struct {
	Chat       Chat
	Sender     Sender
	Token      string
	CallbackID string
}

func (TextCommand) event()    {}
func (TextMessage) event()    {}
func (ButtonCallback) event() {}

// EventFromUpdate decodes a raw update into a typed event. The second
// return is false for updates the bot has no use for.
func EventFromUpdate(upd telegram.Update) (Event, bool) {
	if cb := upd.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.Data == "" {
			return nil, false
		}
		return ButtonCallback{
			Chat:       Chat{ID: cb.Message.Chat.ID},
			Sender:     Sender{TelegramID: cb.From.ID, Username: cb.From.Username},
			Token:      cb.Data,
			CallbackID: cb.ID,
		}, true
	}

	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return nil, false
	}

	chat := Chat{ID: msg.Chat.ID}
	sender := Sender{TelegramID: msg.From.ID, Username: msg.From.Username}

	text := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(text, "/") {
		command := strings.Fields(text)[0]
		// "/start@JeopardyBot" and "/start" are the same command.
		command = strings.SplitN(command, "@", 2)[0]
		return TextCommand{Chat: chat, Sender: sender, Command: command}, true
	}

	return TextMessage{Chat: chat, Sender: sender, Text: text}, true
}
