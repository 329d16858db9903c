package services

import (
	"errors"
	"time"

	"github.com/WorkerOfYear/jeopardy/internal/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

func (s *GameService) HasOpenGame(chatID int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.Game{}).
		Where("chat_id = ? AND status IN ?", chatID, models.OpenStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateGame creates a PENDING game with the given master. The partial
// unique index on open games turns a concurrent create for the same
// chat into ErrGameExists.
func (s *GameService) CreateGame(chatID int64, masterID uint) (*models.Game, error) {
	game := models.Game{
		ChatID:    chatID,
		MasterID:  masterID,
		Status:    models.GameStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGameExists
		}
		return nil, err
	}
	return &game, nil
}

// GetPendingGame returns the chat's PENDING game, or nil when there is
// none.
func (s *GameService) GetPendingGame(chatID int64) (*models.Game, error) {
	var game models.Game
	err := s.db.Where("chat_id = ? AND status = ?", chatID, models.GameStatusPending).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetOpenGame returns the chat's game in any open state, or nil.
func (s *GameService) GetOpenGame(chatID int64) (*models.Game, error) {
	var game models.Game
	err := s.db.Where("chat_id = ? AND status IN ?", chatID, models.OpenStatuses).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) AttachTheme(gameID, themeID uint) error {
	res := s.db.Model(&models.Game{}).
		Where("id = ? AND status = ?", gameID, models.GameStatusPending).
		Updates(map[string]interface{}{
			"theme_id": themeID,
			"status":   models.GameStatusTopicSelected,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// ActivateGame moves the chat's counted-down game to ACTIVE and stamps
// the start time.
func (s *GameService) ActivateGame(chatID int64) error {
	res := s.db.Model(&models.Game{}).
		Where("chat_id = ? AND status = ?", chatID, models.GameStatusTopicSelected).
		Updates(map[string]interface{}{
			"status":     models.GameStatusActive,
			"started_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (s *GameService) HasUserState(userID, gameID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserState{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUserState joins a user to a game at the default level. A
// duplicate join maps to ErrAlreadyJoined via the composite unique
// index.
func (s *GameService) CreateUserState(userID, gameID uint) (*models.UserState, error) {
	state := models.UserState{
		UserID:   userID,
		GameID:   gameID,
		Level:    models.UserLevelGreen,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}
	return &state, nil
}

func (s *GameService) ListOpenGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Where("status IN ?", models.OpenStatuses).
		Preload("Master").
		Preload("Theme").
		Preload("States").
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) GetGame(gameID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// CancelGame is the termination hook for games in any open state.
func (s *GameService) CancelGame(gameID uint) error {
	res := s.db.Model(&models.Game{}).
		Where("id = ? AND status IN ?", gameID, models.OpenStatuses).
		Update("status", models.GameStatusCanceled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// FinishGame is reserved for future scoring flow.
func (s *GameService) FinishGame(gameID uint) error {
	res := s.db.Model(&models.Game{}).
		Where("id = ? AND status = ?", gameID, models.GameStatusActive).
		Update("status", models.GameStatusFinished)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}
