package bot

import (
	"errors"
	"fmt"

	"github.com/WorkerOfYear/jeopardy/internal/models"
	"github.com/WorkerOfYear/jeopardy/internal/services"
	"github.com/WorkerOfYear/jeopardy/internal/telegram"
	"github.com/WorkerOfYear/jeopardy/internal/ws"

	"github.com/rs/zerolog"
)

// Store is the persistence gateway consumed by the orchestrator. Each
// call is atomic at the storage boundary; duplicate-key races surface
// as services.ErrGameExists / services.ErrAlreadyJoined.
type Store interface {
	FindOrCreateUser(telegramID int64, username string) (*models.User, error)
	HasOpenGame(chatID int64) (bool, error)
	CreateGame(chatID int64, masterID uint) (*models.Game, error)
	GetPendingGame(chatID int64) (*models.Game, error)
	GetOpenGame(chatID int64) (*models.Game, error)
	AttachTheme(gameID, themeID uint) error
	ActivateGame(chatID int64) error
	HasUserState(userID, gameID uint) (bool, error)
	CreateUserState(userID, gameID uint) (*models.UserState, error)
	ListThemes() ([]models.Theme, error)
	GetThemeByTitle(title string) (*models.Theme, error)
}

// Transport sends and edits chat messages. Message ids are opaque
// handles for later edits.
type Transport interface {
	Send(chatID int64, text string, replyMarkup interface{}) (int64, error)
	Edit(chatID, messageID int64, text string, replyMarkup interface{}) error
	Ack(callbackID string) error
}

const (
	textPreviousGame  = "Чтобы начать новую игру - закончите прошлую"
	textSettings      = "Это меню настроек"
	textThemeSelected = "Тема выбрана!"
)

// Orchestrator owns the per-chat game state machine. Events for one
// chat are serialized through a chat lock; the countdown runs detached
// and interleaves with later events.
type Orchestrator struct {
	store     Store
	transport Transport
	countdown *CountdownManager
	hub       *ws.Hub
	locks     *chatLocks
	log       zerolog.Logger
}

func NewOrchestrator(store Store, transport Transport, countdown *CountdownManager, hub *ws.Hub, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:     store,
		transport: transport,
		countdown: countdown,
		hub:       hub,
		locks:     newChatLocks(),
		log:       log,
	}
}

// HandleUpdate decodes and dispatches one raw update.
func (o *Orchestrator) HandleUpdate(upd telegram.Update) {
	ev, ok := EventFromUpdate(upd)
	if !ok {
		return
	}
	o.Dispatch(ev)
}

// Dispatch routes an event to exactly one action. Unrecognized
// commands, texts, and tokens are dropped without a side effect.
func (o *Orchestrator) Dispatch(ev Event) {
	switch e := ev.(type) {
	case TextCommand:
		switch e.Command {
		case "/start":
			o.initiateGame(e.Chat, e.Sender)
		case "/settings":
			o.showSettings(e.Chat)
		}
	case TextMessage:
		if theme, ok := telegram.CutThemePrefix(e.Text); ok {
			o.selectTheme(e.Chat, theme)
		}
	case ButtonCallback:
		// Ack first so the button spinner clears even when the press
		// turns out to be a no-op.
		if e.CallbackID != "" {
			if err := o.transport.Ack(e.CallbackID); err != nil {
				o.log.Warn().Err(err).Int64("chat_id", e.Chat.ID).Msg("answer callback")
			}
		}
		switch e.Token {
		case telegram.CallbackStartGame:
			o.initiateGame(e.Chat, e.Sender)
		case telegram.CallbackJoinGame:
			o.joinGame(e.Chat, e.Sender)
		}
	}
}

func (o *Orchestrator) showSettings(chat Chat) {
	if _, err := o.transport.Send(chat.ID, textSettings, telegram.StartGameKeyboard()); err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("send settings")
	}
}

// initiateGame creates a PENDING game with the requester as master and
// prompts for a topic. A chat with an open game gets a notice instead.
func (o *Orchestrator) initiateGame(chat Chat, from Sender) {
	mu := o.locks.get(chat.ID)
	mu.Lock()
	defer mu.Unlock()

	open, err := o.store.HasOpenGame(chat.ID)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("check open game")
		return
	}
	if open {
		o.notify(chat.ID, textPreviousGame)
		return
	}

	user, err := o.store.FindOrCreateUser(from.TelegramID, from.Username)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("resolve user")
		return
	}

	game, err := o.store.CreateGame(chat.ID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrGameExists) {
			// Lost the race to another initiator; same outcome as
			// finding the game open.
			o.notify(chat.ID, textPreviousGame)
			return
		}
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("create game")
		return
	}

	if _, err := o.store.CreateUserState(user.ID, game.ID); err != nil && !errors.Is(err, services.ErrAlreadyJoined) {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("create master state")
		return
	}

	themes, err := o.store.ListThemes()
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("list themes")
		return
	}
	titles := make([]string, 0, len(themes))
	for _, t := range themes {
		titles = append(titles, t.Title)
	}

	prompt := fmt.Sprintf("Мастер игры @%s выбирает тему..", user.Username)
	if _, err := o.transport.Send(chat.ID, prompt, telegram.ThemeKeyboard(titles)); err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("send theme prompt")
		return
	}

	o.broadcast(chat.ID, "game_created", game)
}

// selectTheme attaches a matching theme to the chat's PENDING game and
// starts the join countdown. Late or unmatched selections are ignored.
func (o *Orchestrator) selectTheme(chat Chat, title string) {
	mu := o.locks.get(chat.ID)
	mu.Lock()
	defer mu.Unlock()

	game, err := o.store.GetPendingGame(chat.ID)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("get pending game")
		return
	}
	if game == nil || game.ThemeID != nil {
		return
	}

	theme, err := o.store.GetThemeByTitle(title)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("get theme")
		return
	}
	if theme == nil {
		return
	}

	if err := o.store.AttachTheme(game.ID, theme.ID); err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("attach theme")
		return
	}

	if _, err := o.transport.Send(chat.ID, textThemeSelected, telegram.RemoveKeyboard()); err != nil {
		// The transition is already committed; the countdown still
		// runs so the game does not hang in TOPIC_SELECTED.
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("send theme confirmation")
	}

	o.broadcast(chat.ID, "theme_selected", theme)
	o.countdown.Start(chat.ID, game.ID)
}

// joinGame registers the requester in the chat's open game. Re-joins
// are silent no-ops.
func (o *Orchestrator) joinGame(chat Chat, from Sender) {
	mu := o.locks.get(chat.ID)
	mu.Lock()
	defer mu.Unlock()

	game, err := o.store.GetOpenGame(chat.ID)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("get open game")
		return
	}
	if game == nil {
		return
	}

	user, err := o.store.FindOrCreateUser(from.TelegramID, from.Username)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Msg("resolve user")
		return
	}

	joined, err := o.store.HasUserState(user.ID, game.ID)
	if err != nil {
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("check user state")
		return
	}
	if joined {
		return
	}

	if _, err := o.store.CreateUserState(user.ID, game.ID); err != nil {
		if errors.Is(err, services.ErrAlreadyJoined) {
			return
		}
		o.log.Error().Err(err).Int64("chat_id", chat.ID).Uint("game_id", game.ID).Msg("create user state")
		return
	}

	o.notify(chat.ID, fmt.Sprintf("@%s присоединяется к игре", user.Username))
	o.broadcast(chat.ID, "participant_joined", user)
}

func (o *Orchestrator) notify(chatID int64, text string) {
	if _, err := o.transport.Send(chatID, text, nil); err != nil {
		o.log.Error().Err(err).Int64("chat_id", chatID).Msg("send notice")
	}
}

func (o *Orchestrator) broadcast(chatID int64, event string, data interface{}) {
	if o.hub == nil {
		return
	}
	o.hub.Broadcast(chatID, ws.Event{Type: event, Data: data})
}
