package telegram

import "testing"

func TestThemeKeyboard(t *testing.T) {
	kb := ThemeKeyboard([]string{"История", "Кино"})

	if len(kb.Keyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(kb.Keyboard))
	}
	if kb.Keyboard[0][0].Text != "Тема: История" {
		t.Errorf("button = %q, want prefixed title", kb.Keyboard[0][0].Text)
	}
	if !kb.OneTimeKeyboard || !kb.ResizeKeyboard || !kb.Selective {
		t.Error("theme keyboard must be one-time, resized, selective")
	}
}

func TestCutThemePrefix(t *testing.T) {
	title, ok := CutThemePrefix("Тема: История")
	if !ok || title != "История" {
		t.Errorf("got (%q, %v), want (История, true)", title, ok)
	}

	if _, ok := CutThemePrefix("просто текст"); ok {
		t.Error("plain text matched the theme prefix")
	}
}

func TestInlineKeyboardTokens(t *testing.T) {
	if StartGameKeyboard().InlineKeyboard[0][0].CallbackData != CallbackStartGame {
		t.Error("start keyboard token mismatch")
	}
	if JoinGameKeyboard().InlineKeyboard[0][0].CallbackData != CallbackJoinGame {
		t.Error("join keyboard token mismatch")
	}
}
