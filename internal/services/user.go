package services

import (
	"errors"
	"time"

	"github.com/WorkerOfYear/jeopardy/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate resolves a user by telegram id, creating the record on
// first contact. A concurrent creator losing the unique-index race
// falls back to reading the winner's row.
func (s *UserService) GetOrCreate(telegramID int64, username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error; err == nil {
		return &user, nil
	}

	user = models.User{
		TelegramID: telegramID,
		Username:   username,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if err := s.db.Where("telegram_id = ?", telegramID).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
