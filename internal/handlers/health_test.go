package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwarak18/GPT-llama3.2/internal/handlers"
	"github.com/Dwarak18/GPT-llama3.2/internal/ollama"
)

func getHealth(gen *stubGenerator) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health/ollama", handlers.NewHealthHandler(gen).Ollama)

	req := httptest.NewRequest(http.MethodGet, "/health/ollama", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler_Ollama(t *testing.T) {
	t.Run("рантайм доступен и модель на месте", func(t *testing.T) {
		gen := &stubGenerator{health: ollama.Health{
			Reachable:      true,
			ModelAvailable: true,
			Models:         []string{"llama3.2:latest", "mistral:7b"},
		}}

		w := getHealth(gen)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp["status"])
		assert.EqualValues(t, 2, resp["modelsAvailable"])
		assert.Equal(t, true, resp["requiredModelAvailable"])
		assert.Len(t, resp["models"], 2)
	})

	t.Run("рантайм доступен без нужной модели", func(t *testing.T) {
		gen := &stubGenerator{health: ollama.Health{
			Reachable: true,
			Models:    []string{"mistral:7b"},
		}}

		w := getHealth(gen)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["requiredModelAvailable"])
	})

	t.Run("рантайм недоступен", func(t *testing.T) {
		gen := &stubGenerator{health: ollama.Health{
			Err: errors.New("connection refused"),
		}}

		w := getHealth(gen)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp["status"])
		assert.Equal(t, "connection refused", resp["error"])
	})
}
