package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/qs3c/codegen_go_server/config"
)

var ErrMissingAPIKey = errors.New("OpenAI API key is required")

// Client LLM 对话补全客户端
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIClient 按调用方密钥创建客户端。密钥为空时报错，
// 密钥不落日志、不落盘
func NewOpenAIClient(apiKey string, cfg config.OpenAIConfig) (Client, error) {
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &openAIClient{
		client:      openai.NewClient(apiKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
