package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured возвращается, когда URL сервиса перевода не задан
var ErrNotConfigured = errors.New("translator: service URL is not configured")

// HTTPTranslator - клиент внешнего сервиса перевода (LibreTranslate-совместимый API).
// Выполняет ровно одну попытку запроса, без кеширования и без повторов.
type HTTPTranslator struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPTranslator создает новый HTTPTranslator с ограниченным по времени клиентом
func NewHTTPTranslator(url, apiKey string, timeout time.Duration) *HTTPTranslator {
	return &HTTPTranslator{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate переводит текст на английский, определяя исходный язык автоматически.
// Любой сбой (сеть, таймаут, не-2xx ответ) возвращается как ошибка; политику
// отката на исходный текст применяет вызывающая сторона.
func (t *HTTPTranslator) Translate(ctx context.Context, text string) (string, error) {
	if t.url == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(translateRequest{
		Query:  text,
		Source: "auto",
		Target: "en",
		APIKey: t.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translator: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("translator: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translator: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translator: unexpected status code %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("translator: failed to decode response: %w", err)
	}

	return out.TranslatedText, nil
}
