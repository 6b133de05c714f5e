// Package llm reads structured syllabus data out of free text with a chat
// completion model.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	openai "github.com/sashabaranov/go-openai"
)

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// ChatRequest is a completion request. The caller only ever reads the first
// choice, so N is fixed at one.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// Completer returns the content of the first choice of a chat completion.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// OpenAICompleter calls an OpenAI compatible chat completion endpoint.
type OpenAICompleter struct {
	client *openai.Client
}

// NewOpenAICompleter builds a client for apiKey. An empty baseURL selects the
// public OpenAI endpoint.
func NewOpenAICompleter(apiKey, baseURL string) *OpenAICompleter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAICompleter{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAICompleter) Complete(ctx context.Context, req ChatRequest) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
		N:           1,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", common.NewError(common.ErrExternalService, "OpenAI request timed out")
		}
		return "", fmt.Errorf("%w: openai: %w", common.ErrExternalService, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
