package bot

import (
	"sync"
	"testing"
	"time"

	"github.com/WorkerOfYear/jeopardy/internal/models"
	"github.com/WorkerOfYear/jeopardy/internal/services"
)

// fakeStore keeps everything in maps and enforces the same uniqueness
// the real database does: one open game per chat, one state per
// (user, game).
type fakeStore struct {
	mu         sync.Mutex
	users      map[int64]*models.User
	games      map[uint]*models.Game
	states     map[uint]map[uint]*models.UserState // gameID -> userID
	themes     []models.Theme
	nextUserID uint
	nextGameID uint
}

func newFakeStore(themes ...models.Theme) *fakeStore {
	return &fakeStore{
		users:  make(map[int64]*models.User),
		games:  make(map[uint]*models.Game),
		states: make(map[uint]map[uint]*models.UserState),
		themes: themes,
	}
}

func isOpen(status string) bool {
	for _, s := range models.OpenStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeStore) FindOrCreateUser(telegramID int64, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[telegramID]; ok {
		return u, nil
	}
	f.nextUserID++
	u := &models.User{ID: f.nextUserID, TelegramID: telegramID, Username: username}
	f.users[telegramID] = u
	return u, nil
}

func (f *fakeStore) HasOpenGame(chatID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openGameLocked(chatID) != nil, nil
}

func (f *fakeStore) openGameLocked(chatID int64) *models.Game {
	for _, g := range f.games {
		if g.ChatID == chatID && isOpen(g.Status) {
			return g
		}
	}
	return nil
}

func (f *fakeStore) CreateGame(chatID int64, masterID uint) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.openGameLocked(chatID) != nil {
		return nil, services.ErrGameExists
	}
	f.nextGameID++
	g := &models.Game{ID: f.nextGameID, ChatID: chatID, MasterID: masterID, Status: models.GameStatusPending}
	f.games[g.ID] = g
	return g, nil
}

func (f *fakeStore) GetPendingGame(chatID int64) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.games {
		if g.ChatID == chatID && g.Status == models.GameStatusPending {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetOpenGame(chatID int64) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g := f.openGameLocked(chatID); g != nil {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) AttachTheme(gameID, themeID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	g, ok := f.games[gameID]
	if !ok || g.Status != models.GameStatusPending {
		return services.ErrGameNotFound
	}
	id := themeID
	g.ThemeID = &id
	g.Status = models.GameStatusTopicSelected
	return nil
}

func (f *fakeStore) ActivateGame(chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, g := range f.games {
		if g.ChatID == chatID && g.Status == models.GameStatusTopicSelected {
			now := time.Now()
			g.Status = models.GameStatusActive
			g.StartedAt = &now
			return nil
		}
	}
	return services.ErrGameNotFound
}

func (f *fakeStore) HasUserState(userID, gameID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.states[gameID][userID]
	return ok, nil
}

func (f *fakeStore) CreateUserState(userID, gameID uint) (*models.UserState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.states[gameID] == nil {
		f.states[gameID] = make(map[uint]*models.UserState)
	}
	if _, ok := f.states[gameID][userID]; ok {
		return nil, services.ErrAlreadyJoined
	}
	st := &models.UserState{UserID: userID, GameID: gameID, Level: models.UserLevelGreen}
	f.states[gameID][userID] = st
	return st, nil
}

func (f *fakeStore) ListThemes() ([]models.Theme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Theme(nil), f.themes...), nil
}

func (f *fakeStore) GetThemeByTitle(title string) (*models.Theme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.themes {
		if f.themes[i].Title == title {
			cp := f.themes[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) openGames(chatID int64) []models.Game {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Game
	for _, g := range f.games {
		if g.ChatID == chatID && isOpen(g.Status) {
			out = append(out, *g)
		}
	}
	return out
}

func (f *fakeStore) game(gameID uint) models.Game {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.games[gameID]
}

func (f *fakeStore) stateCount(gameID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.states[gameID])
}

type sentMessage struct {
	ChatID int64
	Text   string
	Markup interface{}
}

type editCall struct {
	ChatID    int64
	MessageID int64
	Text      string
}

// fakeTransport records sends, edits, and callback acks. sendErr and
// editErr, when set, make the corresponding calls fail.
type fakeTransport struct {
	mu        sync.Mutex
	sends     []sentMessage
	edits     []editCall
	acks      []string
	nextMsgID int64
	sendErr   error
	editErr   error
}

func (f *fakeTransport) Send(chatID int64, text string, replyMarkup interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sends = append(f.sends, sentMessage{ChatID: chatID, Text: text, Markup: replyMarkup})
	f.nextMsgID++
	return f.nextMsgID, nil
}

func (f *fakeTransport) Edit(chatID, messageID int64, text string, replyMarkup interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.editErr != nil {
		return f.editErr
	}
	f.edits = append(f.edits, editCall{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (f *fakeTransport) Ack(callbackID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, callbackID)
	return nil
}

func (f *fakeTransport) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.sends))
	for i, s := range f.sends {
		out[i] = s.Text
	}
	return out
}

func (f *fakeTransport) editTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.edits))
	for i, e := range f.edits {
		out[i] = e.Text
	}
	return out
}

func (f *fakeTransport) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

func (f *fakeTransport) lastSend() sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sends[len(f.sends)-1]
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}
