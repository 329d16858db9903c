package services

import (
	"errors"

	"github.com/WorkerOfYear/jeopardy/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) ListThemes() ([]models.Theme, error) {
	var themes []models.Theme
	if err := s.db.Order("title ASC").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// GetThemeByTitle returns nil without error when no theme matches;
// unmatched topic titles are an ignorable condition for the bot.
func (s *QuizService) GetThemeByTitle(title string) (*models.Theme, error) {
	var theme models.Theme
	err := s.db.Where("title = ?", title).First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (s *QuizService) GetTheme(themeID uint) (*models.Theme, error) {
	var theme models.Theme
	err := s.db.Preload("Questions.Answers").First(&theme, themeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrThemeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (s *QuizService) CreateTheme(title, description string) (*models.Theme, error) {
	theme := models.Theme{
		Title:       title,
		Description: description,
	}
	if err := s.db.Create(&theme).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("theme title already taken")
		}
		return nil, err
	}
	return &theme, nil
}

func (s *QuizService) UpdateTheme(themeID uint, title, description string) (*models.Theme, error) {
	var theme models.Theme
	if err := s.db.First(&theme, themeID).Error; err != nil {
		return nil, ErrThemeNotFound
	}

	theme.Title = title
	theme.Description = description
	if err := s.db.Save(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}

func (s *QuizService) DeleteTheme(themeID uint) error {
	res := s.db.Delete(&models.Theme{}, themeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

func (s *QuizService) ListQuestionsByTheme(themeID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("theme_id = ?", themeID).
		Preload("Answers").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuizService) CreateQuestion(themeID uint, title, level string, answers []models.Answer) (*models.Question, error) {
	var theme models.Theme
	if err := s.db.First(&theme, themeID).Error; err != nil {
		return nil, ErrThemeNotFound
	}

	question := models.Question{
		ThemeID: themeID,
		Title:   title,
		Level:   level,
		Answers: answers,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuizService) UpdateQuestion(questionID uint, title, level string) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	question.Title = title
	question.Level = level
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuizService) DeleteQuestion(questionID uint) error {
	res := s.db.Delete(&models.Question{}, questionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return nil
}
