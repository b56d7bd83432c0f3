package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextGenerationClientInterface using Google's Gemini models
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

// NewGeminiTextClient creates a new Gemini client
func NewGeminiTextClient(ctx context.Context, apiKey, model string) (TextGenerationClientInterface, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, messages []ChatMessage) (string, error) {
	system, history, last := buildGeminiConversation(messages)

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0)
	if system != nil {
		m.SystemInstruction = system
	}

	cs := m.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini (%s): %w", c.model, err)
	}
	return geminiResponseText(resp)
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}

// buildGeminiConversation maps chat messages onto Gemini's shape: system turns
// become the system instruction, the final turn is the message to send and
// everything in between is chat history.
func buildGeminiConversation(messages []ChatMessage) (*genai.Content, []*genai.Content, string) {
	system, turns := splitSystemPrompt(messages)

	var instruction *genai.Content
	if system != "" {
		instruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	if len(turns) == 0 {
		return instruction, nil, ""
	}

	history := make([]*genai.Content, 0, len(turns)-1)
	for _, t := range turns[:len(turns)-1] {
		role := "user"
		if t.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(t.Content)}})
	}
	return instruction, history, turns[len(turns)-1].Content
}

// geminiResponseText joins the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return out.String(), nil
}
