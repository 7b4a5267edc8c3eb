package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"

	generateTimeout = 30 * time.Second
	healthTimeout   = 5 * time.Second

	// Ответ, когда рантайм вернул тело вообще без поля response
	emptyReplyFallback = "No response generated"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	CheckHealth(ctx context.Context) Health
}

// Health снимок доступности рантайма на момент запроса, не кешируется
type Health struct {
	Reachable      bool
	ModelAvailable bool
	Models         []string
	Err            error
}

type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{},
	}
}

func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
	Error    string  `json:"error"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Generate выполняет один синхронный запрос генерации, без ретраев
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknown, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrModelNotAvailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknown, err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrUnknown, parsed.Error)
		}
		return "", fmt.Errorf("%w: status %d", ErrUnknown, resp.StatusCode)
	}

	if parsed.Response == nil {
		return emptyReplyFallback, nil
	}
	return *parsed.Response, nil
}

// CheckHealth опрашивает список моделей рантайма.
// Никогда не возвращает ошибку наружу, только заполненный Health.
func (c *Client) CheckHealth(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return Health{Err: fmt.Errorf("%w: %v", ErrUnknown, err)}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Health{Err: classify(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Health{Err: fmt.Errorf("%w: status %d", ErrUnknown, resp.StatusCode)}
	}

	var parsed tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Health{Err: fmt.Errorf("%w: %v", ErrUnknown, err)}
	}

	health := Health{Reachable: true, Models: make([]string, 0, len(parsed.Models))}
	for _, m := range parsed.Models {
		health.Models = append(health.Models, m.Name)
		// Теги вида llama3.2:latest считаются тем же идентификатором модели
		if m.Name == c.model || strings.HasPrefix(m.Name, c.model+":") {
			health.ModelAvailable = true
		}
	}
	return health
}

// classify переводит сетевые сбои в таксономию ошибок клиента
func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return ErrServiceUnavailable
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrServiceUnreachable
	}
	return fmt.Errorf("%w: %v", ErrUnknown, err)
}
