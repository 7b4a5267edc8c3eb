package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Dwarak18/GPT-llama3.2/internal/handlers"
	"github.com/Dwarak18/GPT-llama3.2/internal/middleware"
	authpkg "github.com/Dwarak18/GPT-llama3.2/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	chatH *handlers.ChatHandler,
	healthH *handlers.HealthHandler,
	jwtMgr *authpkg.JWTManager,
	rdb *redis.Client,
) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GPT-llama3.2 backend is running")
	})

	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/logout", authH.Logout)
	r.POST("/chat", chatH.Chat)
	r.GET("/health/ollama", healthH.Ollama)

	// Защищенные endpoints
	auth := r.Group("/auth")
	auth.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		auth.GET("/me", userH.GetMe)
	}
}
