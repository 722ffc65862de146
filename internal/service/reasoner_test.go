package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnidisha/internal/config"
)

func TestNewGroqReasonerDisabled(t *testing.T) {
	assert.Nil(t, NewGroqReasoner(&config.AIConfig{}))
}

func TestGroqReasonerGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "model says hi"}}]}`))
	}))
	defer server.Close()

	reasoner := NewGroqReasoner(&config.AIConfig{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Model:     "llama-3.3-70b-versatile",
		TimeoutMS: 2000,
	})
	require.NotNil(t, reasoner)

	got, err := reasoner.Generate(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "model says hi", got)
}

func TestGroqReasonerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	reasoner := NewGroqReasoner(&config.AIConfig{
		APIKey: "test-key", BaseURL: server.URL, Model: "m", TimeoutMS: 2000,
	})

	_, err := reasoner.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGroqReasonerEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	reasoner := NewGroqReasoner(&config.AIConfig{
		APIKey: "test-key", BaseURL: server.URL, Model: "m", TimeoutMS: 2000,
	})

	_, err := reasoner.Generate(context.Background(), "p")
	assert.Error(t, err)
}
