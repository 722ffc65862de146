package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"apnidisha/internal/config"
)

// Reasoner produces free-form text from a prompt. The response is untrusted;
// callers must apply their own parse-and-fallback discipline. Any error,
// including a timeout, means "service unavailable".
type Reasoner interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type groqReasoner struct {
	config *config.AIConfig
	client *http.Client
}

// NewGroqReasoner creates a Reasoner backed by the Groq chat completions
// API. Returns nil when no API key is configured; consumers treat a nil
// Reasoner as disabled and use their deterministic fallbacks.
func NewGroqReasoner(cfg *config.AIConfig) Reasoner {
	if !cfg.IsEnabled() {
		return nil
	}
	return &groqReasoner{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

func (r *groqReasoner) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": r.config.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  1024,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) > 0 && chatResp.Choices[0].Message.Content != "" {
		return chatResp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("empty response from model")
}
