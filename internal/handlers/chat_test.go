package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwarak18/GPT-llama3.2/internal/handlers"
	"github.com/Dwarak18/GPT-llama3.2/internal/ollama"
)

type stubGenerator struct {
	reply         string
	err           error
	health        ollama.Health
	generateCalls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.generateCalls++
	return s.reply, s.err
}

func (s *stubGenerator) CheckHealth(ctx context.Context) ollama.Health {
	return s.health
}

func newChatRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", handlers.NewChatHandler(gen).Chat)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler_Chat(t *testing.T) {
	t.Run("успешный relay", func(t *testing.T) {
		gen := &stubGenerator{reply: "hello there"}
		w := postJSON(newChatRouter(gen), "/chat", `{"message":"hi"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "hello there", resp["reply"])
	})

	t.Run("пустой ответ отдается как есть", func(t *testing.T) {
		gen := &stubGenerator{reply: ""}
		w := postJSON(newChatRouter(gen), "/chat", `{"message":"hi"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"reply":""}`, w.Body.String())
	})

	t.Run("без message рантайм не вызывается", func(t *testing.T) {
		gen := &stubGenerator{reply: "ignored"}
		w := postJSON(newChatRouter(gen), "/chat", `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
		assert.Zero(t, gen.generateCalls)
	})

	t.Run("таксономия ошибок клиента", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"сервис недоступен", ollama.ErrServiceUnavailable, http.StatusServiceUnavailable},
			{"хост недостижим", ollama.ErrServiceUnreachable, http.StatusServiceUnavailable},
			{"модель отсутствует", ollama.ErrModelNotAvailable, http.StatusNotFound},
			{"таймаут", ollama.ErrTimeout, http.StatusInternalServerError},
			{"неизвестная ошибка", ollama.ErrUnknown, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gen := &stubGenerator{err: tt.err}
				router := newChatRouter(gen)

				// Один и тот же запрос всегда дает один и тот же статус
				for i := 0; i < 2; i++ {
					w := postJSON(router, "/chat", `{"message":"hi"}`)
					require.Equal(t, tt.wantStatus, w.Code)

					var resp map[string]string
					require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
					assert.NotEmpty(t, resp["error"])
				}
			})
		}
	})
}
