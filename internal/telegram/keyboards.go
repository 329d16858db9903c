package telegram

import "strings"

// ThemePrefix marks reply-keyboard buttons carrying a topic choice.
// The bot recognizes a topic selection by this prefix on message text.
const ThemePrefix = "Тема: "

const (
	CallbackStartGame = "start_game"
	CallbackJoinGame  = "join_game"
)

// ThemeKeyboard builds a one-time reply keyboard of topic choices for
// the game master.
func ThemeKeyboard(titles []string) *ReplyKeyboardMarkup {
	var rows [][]KeyboardButton
	for _, title := range titles {
		rows = append(rows, []KeyboardButton{{Text: ThemePrefix + title}})
	}
	return &ReplyKeyboardMarkup{
		Keyboard:        rows,
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
		Selective:       true,
	}
}

func StartGameKeyboard() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: "Начать игру", CallbackData: CallbackStartGame}},
		},
	}
}

func JoinGameKeyboard() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: "Учавствовать", CallbackData: CallbackJoinGame}},
		},
	}
}

// CutThemePrefix extracts the topic title from a theme-button press.
func CutThemePrefix(text string) (string, bool) {
	return strings.CutPrefix(text, ThemePrefix)
}

func RemoveKeyboard() *ReplyKeyboardRemove {
	return &ReplyKeyboardRemove{RemoveKeyboard: true}
}
