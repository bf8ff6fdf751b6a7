package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = `You help the residents of an apartment complex fix building problems.
Reply with a JSON array of at most 3 objects, each with the keys "title" (short),
"description" (a few practical sentences) and "confidence" (integer 0-100).
Reply with the JSON array only.`

var ErrNoAPIKey = errors.New("OPENAI_API_KEY is not set")

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a chat-completion client. baseURL may point at any
// OpenAI-compatible endpoint.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = defaultModel
		slog.Warn("OPENAI_MODEL not set, defaulting", "model", model)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	slog.Info("Initializing OpenAI client", "model", model)
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Suggest asks the model for candidate solutions to the issue.
func (o *OpenAIClient) Suggest(ctx context.Context, title, description string) ([]solution.Candidate, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Issue: %s\n\n%s", title, description)},
		},
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}
	slog.Debug("Received response from OpenAI", "finish_reason", resp.Choices[0].FinishReason)
	return ParseCandidates(resp.Choices[0].Message.Content)
}

// ParseCandidates decodes the model reply. Markdown code fences around the
// array are tolerated.
func ParseCandidates(content string) ([]solution.Candidate, error) {
	body := strings.TrimSpace(content)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	}

	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON array in model reply")
	}

	var candidates []solution.Candidate
	if err := json.Unmarshal([]byte(body[start:end+1]), &candidates); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}
	return candidates, nil
}
