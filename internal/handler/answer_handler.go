package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stockassistant/internal/model"

	"github.com/gin-gonic/gin"
)

type AnswerStore interface {
	GetAnswers(limit, offset int) ([]model.Answer, error)
	GetAnswerTotal() (int, error)
}

// AnswerHandler serves the answer log. A nil store means the log is disabled.
type AnswerHandler struct {
	repository AnswerStore
}

func NewAnswerHandler(repository AnswerStore) *AnswerHandler {
	return &AnswerHandler{repository: repository}
}

func toAnswerResponse(a model.Answer) AnswerResponse {
	return AnswerResponse{
		ID:           a.ID,
		Question:     a.Question,
		QuestionType: a.QuestionType,
		Response:     a.Response,
		Failure:      a.Failure,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Answer log disabled"})
		return
	}

	limit, offset := pageParams(c)

	answers, err := h.repository.GetAnswers(limit, offset)
	if err != nil {
		slog.Error("error fetching answers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetAnswerTotal()
	if err != nil {
		slog.Error("error fetching answer total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AnswersResponse{
		Answers: make([]AnswerResponse, 0, len(answers)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, a := range answers {
		res.Answers = append(res.Answers, toAnswerResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *AnswerHandler) GetHealth(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "disabled",
		})
		return
	}

	if _, err := h.repository.GetAnswerTotal(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
