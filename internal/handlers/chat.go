package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dwarak18/GPT-llama3.2/internal/handlers/dto"
	"github.com/Dwarak18/GPT-llama3.2/internal/ollama"
)

type ChatHandler struct {
	client ollama.Generator
}

func NewChatHandler(client ollama.Generator) *ChatHandler {
	return &ChatHandler{client: client}
}

// Chat пересылает сообщение в Ollama и возвращает ответ как есть
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.client.Generate(c.Request.Context(), req.Message)
	if err != nil {
		status, msg := mapGenerateError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}

// mapGenerateError переводит таксономию клиента в HTTP статусы
func mapGenerateError(err error) (int, string) {
	switch {
	case errors.Is(err, ollama.ErrModelNotAvailable):
		return http.StatusNotFound, "model is not available"
	case errors.Is(err, ollama.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "generation service is unavailable"
	case errors.Is(err, ollama.ErrServiceUnreachable):
		return http.StatusServiceUnavailable, "generation service is unreachable"
	case errors.Is(err, ollama.ErrTimeout):
		return http.StatusInternalServerError, "generation request timed out"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
