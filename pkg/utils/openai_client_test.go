package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedChatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []ChatMessage `json:"messages"`
}

func newChatServer(t *testing.T, status int, body string, captured *capturedChatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestOpenAICompatibleClient_GenerateText(t *testing.T) {
	messages := []ChatMessage{
		{Role: RoleSystem, Content: "You are a helpful travel assistant."},
		{Role: RoleHuman, Content: "Create an itinerary for my trip."},
	}

	t.Run("sends a deterministic request and returns the content", func(t *testing.T) {
		var captured capturedChatRequest
		srv := newChatServer(t, http.StatusOK, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "mixtral-8x7b-32768",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Day 1: Old town walk"}, "finish_reason": "stop"}]
		}`, &captured)
		defer srv.Close()

		client := NewOpenAICompatibleClient("test-key", srv.URL, "mixtral-8x7b-32768")
		text, err := client.GenerateText(context.Background(), messages)
		require.NoError(t, err)

		assert.Equal(t, "Day 1: Old town walk", text)
		assert.Equal(t, "mixtral-8x7b-32768", captured.Model)
		assert.Less(t, captured.Temperature, 1e-6)
		assert.Equal(t, messages, captured.Messages)
	})

	t.Run("no choices", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, `{"id": "x", "object": "chat.completion", "choices": []}`, nil)
		defer srv.Close()

		_, err := NewOpenAICompatibleClient("test-key", srv.URL, "m").GenerateText(context.Background(), messages)
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("api error", func(t *testing.T) {
		srv := newChatServer(t, http.StatusUnauthorized,
			`{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}}`, nil)
		defer srv.Close()

		_, err := NewOpenAICompatibleClient("test-key", srv.URL, "m").GenerateText(context.Background(), messages)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid API Key")
	})
}

func TestNewTextGenerationClient(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewTextGenerationClient(ctx, "llama-farm", "key", "", "")
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewTextGenerationClient(ctx, "groq", "  ", "", "")
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("groq uses the OpenAI-compatible client", func(t *testing.T) {
		client, err := NewTextGenerationClient(ctx, "GROQ", "key", "", "")
		require.NoError(t, err)
		c, ok := client.(*OpenAICompatibleClient)
		require.True(t, ok)
		assert.Equal(t, "mixtral-8x7b-32768", c.model)
		assert.NoError(t, client.Close())
	})

	t.Run("model override", func(t *testing.T) {
		client, err := NewTextGenerationClient(ctx, "openai", "key", "", "gpt-4.1")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4.1", client.(*OpenAICompatibleClient).model)
	})
}

func TestSplitSystemPrompt(t *testing.T) {
	system, rest := splitSystemPrompt([]ChatMessage{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleHuman, Content: "b"},
		{Role: RoleSystem, Content: "c"},
	})
	assert.Equal(t, "a\nc", system)
	assert.Equal(t, []ChatMessage{{Role: RoleHuman, Content: "b"}}, rest)
}
