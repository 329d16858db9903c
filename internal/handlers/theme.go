package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/WorkerOfYear/jeopardy/internal/models"
	"github.com/WorkerOfYear/jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	quizService *services.QuizService
}

func NewThemeHandler(quizService *services.QuizService) *ThemeHandler {
	return &ThemeHandler{quizService: quizService}
}

type ThemeRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

func (h *ThemeHandler) ListThemes(c *gin.Context) {
	themes, err := h.quizService.ListThemes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, themes)
}

func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	theme, err := h.quizService.CreateTheme(req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, theme)
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme id"})
		return
	}

	theme, err := h.quizService.GetTheme(id)
	if err != nil {
		if errors.Is(err, services.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme id"})
		return
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	theme, err := h.quizService.UpdateTheme(id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *ThemeHandler) DeleteTheme(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme id"})
		return
	}

	if err := h.quizService.DeleteTheme(id); err != nil {
		if errors.Is(err, services.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "theme deleted"})
}

type AnswerRequest struct {
	Title     string `json:"title" binding:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionRequest struct {
	Title   string          `json:"title" binding:"required,max=500"`
	Level   string          `json:"level" binding:"omitempty,oneof=GREEN YELLOW RED"`
	Answers []AnswerRequest `json:"answers" binding:"required,min=1"`
}

func (h *ThemeHandler) CreateQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	level := req.Level
	if level == "" {
		level = models.QuestionLevelGreen
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{Title: a.Title, IsCorrect: a.IsCorrect})
	}

	question, err := h.quizService.CreateQuestion(id, req.Title, level, answers)
	if err != nil {
		if errors.Is(err, services.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *ThemeHandler) ListQuestions(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme id"})
		return
	}

	questions, err := h.quizService.ListQuestionsByTheme(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
