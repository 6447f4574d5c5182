package services

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type CompletionService interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error)
}

type openaiCompletionService struct {
	client  openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

func NewOpenAICompletionService(apiKey, model string, timeout time.Duration) CompletionService {
	return &openaiCompletionService{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   openai.ChatModel(model),
		timeout: timeout,
	}
}

// Complete implements CompletionService. A single chat completion round
// trip, bounded by the configured timeout. No retries: a failed completion
// fails the stage that requested it.
func (s *openaiCompletionService) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
