package bot

import (
	"fmt"
	"sync"
	"time"

	"github.com/WorkerOfYear/jeopardy/internal/telegram"
	"github.com/WorkerOfYear/jeopardy/internal/ws"

	"github.com/rs/zerolog"
)

const (
	textJoinPrompt  = "Кто будет учавствовать?"
	textTimerTitle  = "Игра начинается"
	textFinalBanner = "Игра началась! 🚀"
)

// CountdownManager runs the join-window countdown for games. At most
// one countdown per game; each runs in its own goroutine with a stop
// channel, so cancellation never sends the final banner or activates.
type CountdownManager struct {
	store     Store
	transport Transport
	hub       *ws.Hub
	duration  time.Duration
	tick      time.Duration
	log       zerolog.Logger

	mu      sync.Mutex
	stopChs map[uint]chan struct{}
}

func NewCountdownManager(store Store, transport Transport, hub *ws.Hub, duration, tick time.Duration, log zerolog.Logger) *CountdownManager {
	return &CountdownManager{
		store:     store,
		transport: transport,
		hub:       hub,
		duration:  duration,
		tick:      tick,
		log:       log,
		stopChs:   make(map[uint]chan struct{}),
	}
}

// Start launches the countdown for a game. It reports false when a
// countdown for that game is already live.
func (m *CountdownManager) Start(chatID int64, gameID uint) bool {
	m.mu.Lock()
	if _, exists := m.stopChs[gameID]; exists {
		m.mu.Unlock()
		return false
	}
	stopCh := make(chan struct{})
	m.stopChs[gameID] = stopCh
	m.mu.Unlock()

	go m.run(chatID, gameID, stopCh)
	return true
}

// Active reports whether the game's countdown is still live.
func (m *CountdownManager) Active(gameID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.stopChs[gameID]
	return ok
}

// Cancel stops the game's countdown without activating the game.
func (m *CountdownManager) Cancel(gameID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.stopChs[gameID]; ok {
		close(ch)
		delete(m.stopChs, gameID)
	}
}

// Stop cancels every live countdown. Called on process shutdown.
func (m *CountdownManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ch := range m.stopChs {
		close(ch)
		delete(m.stopChs, id)
	}
}

func (m *CountdownManager) remove(gameID uint, stopCh chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.stopChs[gameID]; ok && ch == stopCh {
		delete(m.stopChs, gameID)
	}
}

func (m *CountdownManager) run(chatID int64, gameID uint, stopCh chan struct{}) {
	defer m.remove(gameID, stopCh)

	if _, err := m.transport.Send(chatID, textJoinPrompt, telegram.JoinGameKeyboard()); err != nil {
		m.log.Error().Err(err).Int64("chat_id", chatID).Uint("game_id", gameID).Msg("send join prompt")
	}

	ticks := int(m.duration / m.tick)
	if ticks < 1 {
		ticks = 1
	}

	msgID, err := m.transport.Send(chatID, m.timerText(ticks), nil)
	if err != nil {
		m.log.Error().Err(err).Int64("chat_id", chatID).Uint("game_id", gameID).Msg("send timer")
	}

	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	for i := 1; i <= ticks; i++ {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Presentation only; a failed edit skips to the next tick.
			if err := m.transport.Edit(chatID, msgID, m.timerText(ticks-i), nil); err != nil {
				m.log.Warn().Err(err).Int64("chat_id", chatID).Uint("game_id", gameID).Msg("edit timer")
			}
		}
	}

	// The banner is cosmetic; the activation below is authoritative
	// and commits regardless.
	if err := m.transport.Edit(chatID, msgID, textFinalBanner, nil); err != nil {
		m.log.Warn().Err(err).Int64("chat_id", chatID).Uint("game_id", gameID).Msg("edit final banner")
	}

	if err := m.store.ActivateGame(chatID); err != nil {
		m.log.Error().Err(err).Int64("chat_id", chatID).Uint("game_id", gameID).Msg("activate game")
		return
	}

	if m.hub != nil {
		m.hub.Broadcast(chatID, ws.Event{Type: "game_started", Data: map[string]uint{"game_id": gameID}})
	}
}

func (m *CountdownManager) timerText(remaining int) string {
	left := time.Duration(remaining) * m.tick
	return fmt.Sprintf("%s, осталось %gс..", textTimerTitle, left.Seconds())
}
