package handlers

import (
	"errors"
	"net/http"

	"github.com/WorkerOfYear/jeopardy/internal/bot"
	"github.com/WorkerOfYear/jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
	countdown   *bot.CountdownManager
}

func NewGameHandler(gameService *services.GameService, countdown *bot.CountdownManager) *GameHandler {
	return &GameHandler{gameService: gameService, countdown: countdown}
}

func (h *GameHandler) ListOpenGames(c *gin.Context) {
	games, err := h.gameService.ListOpenGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

// CancelGame terminates an open game. A live join countdown is stopped
// first so the chat never sees the "started" banner for a dead game.
func (h *GameHandler) CancelGame(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	h.countdown.Cancel(id)

	if err := h.gameService.CancelGame(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "game canceled"})
}
