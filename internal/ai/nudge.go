package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const nudgeSystemPrompt = `You are a friendly wellbeing assistant that reads one line of a live conversation transcript.
Reply with exactly one short, supportive sentence addressed to the speaker.
Do not ask questions, do not use emojis, and never exceed 30 words.`

// ChatCompleter is the part of the OpenAI client used for nudges
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Nudger asks a chat model for a one-sentence reply to a transcript line
type Nudger struct {
	client ChatCompleter
	model  string
}

// NewNudger creates a Nudger backed by the OpenAI API
func NewNudger(apiKey, model string) (*Nudger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return NewNudgerWithClient(openai.NewClient(apiKey), model), nil
}

// NewNudgerWithClient creates a Nudger with a caller-supplied completion client
func NewNudgerWithClient(client ChatCompleter, model string) *Nudger {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Nudger{client: client, model: model}
}

// Nudge returns a short supportive message for the given transcript text
func (n *Nudger) Nudge(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty transcript text")
	}

	log.Printf("[AI] Requesting nudge (model: %s, text length: %d)", n.model, len(text))

	req := openai.ChatCompletionRequest{
		Model: n.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: nudgeSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Transcript line: %q", text),
			},
		},
		Temperature: 0.4,
		MaxTokens:   60,
	}

	resp, err := n.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("OpenAI returned an empty reply")
	}

	log.Printf("[AI] Nudge received (length: %d, total tokens: %d)", len(reply), resp.Usage.TotalTokens)
	return reply, nil
}
