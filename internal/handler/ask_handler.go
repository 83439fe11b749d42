package handler

import (
	"context"
	"log/slog"
	"net/http"

	"stockassistant/internal/assistant"
	"stockassistant/internal/model"

	"github.com/gin-gonic/gin"
)

type Asker interface {
	Ask(ctx context.Context, question string) assistant.Result
}

type SectorLister interface {
	Sectors() []string
}

type AskHandler struct {
	assistant Asker
	sectors   SectorLister
}

func NewAskHandler(assistant Asker, sectors SectorLister) *AskHandler {
	return &AskHandler{assistant: assistant, sectors: sectors}
}

func toIntentResponse(i *model.Intent) *IntentResponse {
	if i == nil {
		return nil
	}
	return &IntentResponse{
		QuestionType:  string(i.QuestionType),
		Companies:     i.Companies,
		Tickers:       i.Tickers,
		Sectors:       i.Sectors,
		MainEntity:    i.MainEntity,
		NeedsAnalysis: i.NeedsAnalysis,
		NeedsNews:     i.NeedsNews,
	}
}

// Ask always answers 200 once the body parses; failures are in the message.
func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid ask request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res := h.assistant.Ask(c.Request.Context(), req.Question)

	c.JSON(http.StatusOK, AskResponse{
		Question: req.Question,
		Response: res.Message,
		Failure:  string(res.Failure),
		Intent:   toIntentResponse(res.Intent),
	})
}

func (h *AskHandler) GetSectors(c *gin.Context) {
	c.JSON(http.StatusOK, SectorsResponse{Sectors: h.sectors.Sectors()})
}
