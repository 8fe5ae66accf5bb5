package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pErrors "partyline/errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultBaseURL   = "https://openrouter.ai/api/v1"
	DefaultModel     = "mistralai/mistral-7b-instruct"
	DefaultMaxTokens = 150
	DefaultTemp      = 0.5
	appTitle         = "Party Line Game"
)

type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Referer     string
	Timeout     time.Duration
}

// OpenRouterSummarizer talks to an OpenAI compatible chat completions endpoint.
type OpenRouterSummarizer struct {
	cfg    OpenRouterConfig
	client openai.Client
	log    *slog.Logger
}

func NewOpenRouterSummarizer(cfg OpenRouterConfig, log *slog.Logger) *OpenRouterSummarizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/"),
		option.WithHeader("X-Title", appTitle),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	return &OpenRouterSummarizer{cfg: cfg, client: openai.NewClient(opts...), log: log}
}

func (s *OpenRouterSummarizer) Summarize(ctx context.Context, systemPrompt, content string) (string, error) {
	start := time.Now()
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Summarize the following: " + content),
		},
		MaxTokens:   openai.Int(int64(s.cfg.MaxTokens)),
		Temperature: openai.Float(s.cfg.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", pErrors.ErrSummaryFailed, err)
	}
	s.log.Debug("Summary requested", "model", s.cfg.Model, "duration", time.Since(start))

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", pErrors.ErrSummaryFailed)
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
