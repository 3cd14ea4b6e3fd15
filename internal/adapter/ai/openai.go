package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"resume-builder/internal/port"
)

// ChatConfig holds configuration for the chat-completions client.
type ChatConfig struct {
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint, e.g. https://api.deepseek.com
	Model   string // e.g. deepseek-chat
}

// ChatClient implements port.ChatCompleter using the official OpenAI SDK.
// Pointing BaseURL at an OpenAI-compatible provider (DeepSeek) is supported
// by the SDK directly.
type ChatClient struct {
	client *openai.Client
	model  string
}

const (
	chatTemperature = 0.7
	chatMaxTokens   = 512
)

// NewChatClient creates a chat-completions client. The API key is required;
// callers treat a missing key as the summarizer being unconfigured.
func NewChatClient(cfg ChatConfig) (*ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &ChatClient{client: &client, model: cfg.Model}, nil
}

// ModelName returns the chat model identifier.
func (c *ChatClient) ModelName() string {
	return c.model
}

// Complete sends a single system+user exchange and returns the generated
// text with token usage.
func (c *ChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*port.ChatResult, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(chatTemperature),
		MaxTokens:   openai.Int(chatMaxTokens),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: no choices in response")
	}

	return &port.ChatResult{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}, nil
}
