package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dwarak18/GPT-llama3.2/internal/ollama"
)

type HealthHandler struct {
	client ollama.Generator
}

func NewHealthHandler(client ollama.Generator) *HealthHandler {
	return &HealthHandler{client: client}
}

// Ollama отдаёт диагностический статус рантайма, chat от него не зависит
func (h *HealthHandler) Ollama(c *gin.Context) {
	health := h.client.CheckHealth(c.Request.Context())

	if !health.Reachable {
		reason := "ollama is not reachable"
		if health.Err != nil {
			reason = health.Err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  reason,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "healthy",
		"modelsAvailable":        len(health.Models),
		"requiredModelAvailable": health.ModelAvailable,
		"models":                 health.Models,
	})
}
