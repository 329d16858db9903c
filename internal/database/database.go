package database

import (
	"fmt"

	"github.com/WorkerOfYear/jeopardy/internal/config"
	"github.com/WorkerOfYear/jeopardy/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Theme{},
		&models.Question{},
		&models.Answer{},
		&models.Game{},
		&models.UserState{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// One open game per chat. Gorm tags cannot express a partial
	// index, so it is created directly; racing creators hit a
	// duplicate-key error and take the "game exists" path.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_games_open_chat
		ON games (chat_id)
		WHERE status IN ('PENDING', 'TOPIC_SELECTED', 'ACTIVE')`).Error
	if err != nil {
		return fmt.Errorf("create open-game index: %w", err)
	}

	return nil
}
