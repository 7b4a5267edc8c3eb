package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Dwarak18/GPT-llama3.2/internal/middleware"
	"github.com/Dwarak18/GPT-llama3.2/internal/services"
)

type UserHandler struct {
	store services.UserStore
}

func NewUserHandler(store services.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// GetMe возвращает информацию о текущем пользователе
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.store.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"phone":    user.Phone,
	})
}
