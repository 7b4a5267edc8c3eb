package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowedMethods единственный разрешённый метод для каждого маршрута
var allowedMethods = map[string]string{
	"/":              http.MethodGet,
	"/signup":        http.MethodPost,
	"/login":         http.MethodPost,
	"/logout":        http.MethodPost,
	"/chat":          http.MethodPost,
	"/health/ollama": http.MethodGet,
	"/auth/me":       http.MethodGet,
}

func MethodNotAllowed(c *gin.Context) {
	if allow, ok := allowedMethods[c.Request.URL.Path]; ok {
		c.Header("Allow", allow)
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
}
