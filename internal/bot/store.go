package bot

import (
	"github.com/WorkerOfYear/jeopardy/internal/models"
	"github.com/WorkerOfYear/jeopardy/internal/services"
)

// Gateway adapts the persistence services to the orchestrator's Store
// interface.
type Gateway struct {
	users *services.UserService
	games *services.GameService
	quiz  *services.QuizService
}

func NewGateway(users *services.UserService, games *services.GameService, quiz *services.QuizService) *Gateway {
	return &Gateway{users: users, games: games, quiz: quiz}
}

func (g *Gateway) FindOrCreateUser(telegramID int64, username string) (*models.User, error) {
	return g.users.GetOrCreate(telegramID, username)
}

func (g *Gateway) HasOpenGame(chatID int64) (bool, error) {
	return g.games.HasOpenGame(chatID)
}

func (g *Gateway) CreateGame(chatID int64, masterID uint) (*models.Game, error) {
	return g.games.CreateGame(chatID, masterID)
}

func (g *Gateway) GetPendingGame(chatID int64) (*models.Game, error) {
	return g.games.GetPendingGame(chatID)
}

func (g *Gateway) GetOpenGame(chatID int64) (*models.Game, error) {
	return g.games.GetOpenGame(chatID)
}

func (g *Gateway) AttachTheme(gameID, themeID uint) error {
	return g.games.AttachTheme(gameID, themeID)
}

func (g *Gateway) ActivateGame(chatID int64) error {
	return g.games.ActivateGame(chatID)
}

func (g *Gateway) HasUserState(userID, gameID uint) (bool, error) {
	return g.games.HasUserState(userID, gameID)
}

func (g *Gateway) CreateUserState(userID, gameID uint) (*models.UserState, error) {
	return g.games.CreateUserState(userID, gameID)
}

func (g *Gateway) ListThemes() ([]models.Theme, error) {
	return g.quiz.ListThemes()
}

func (g *Gateway) GetThemeByTitle(title string) (*models.Theme, error) {
	return g.quiz.GetThemeByTitle(title)
}
