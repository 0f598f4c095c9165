package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the endpoint answers successfully but
// produces no usable text. Callers must treat it as a summarization
// failure, never as an empty-but-valid summary.
var ErrEmptyCompletion = errors.New("ai: model returned an empty completion")

const instructionPrompt = `You are an analyst of AI and automation communities. Given recent posts grouped by source, extract:
1. Key trends and emerging tools
2. Best practices and workflows mentioned
3. Notable new releases or breakthroughs
4. Practical tips and use cases

Format as a clear, actionable summary with bullet points.`

// Summarizer turns a digest text block into a natural-language summary.
type Summarizer interface {
	SummarizeDigest(ctx context.Context, digest string) (string, error)
}

// OpenAIClient implements Summarizer using the Chat Completions API. The
// endpoint is OpenAI-compatible; BaseURL selects a different host without
// changing the wire protocol.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

// SummarizeDigest sends the digest with the fixed instruction and returns
// the summary text. Exactly one attempt: the job is a best-effort daily
// shot and retries belong to the next scheduled run.
func (o *OpenAIClient) SummarizeDigest(ctx context.Context, digest string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructionPrompt},
			{Role: openai.ChatMessageRoleUser, Content: digest},
		},
		Temperature: 0.3,
	})
	if err != nil {
		slog.Error("ai: summarize digest error", "err", err)
		return "", fmt.Errorf("ai: completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
