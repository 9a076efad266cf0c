package generator

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider generates copy through the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	cfg    Config
}

// NewOpenAIProvider creates a new OpenAI backend.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	opts := []option.RequestOption{}

	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModels["openai"]
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		cfg:    cfg,
	}, nil
}

// Generate sends one synchronous request and returns the first choice.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (Response, error) {
	req.applyDefaults()
	started := time.Now()

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    messages,
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	duration := time.Since(started)

	if err != nil {
		berr := classifyOpenAIError(err)
		p.cfg.notify(CallEvent{
			Provider:    p.Name(),
			Model:       p.model,
			PromptChars: len(req.Prompt),
			Err:         berr,
			Duration:    duration,
			StartedAt:   started,
		})
		return Response{}, berr
	}

	if len(resp.Choices) == 0 {
		berr := &BackendError{Kind: KindBadResponse, Message: "no choices in response"}
		p.cfg.notify(CallEvent{
			Provider:    p.Name(),
			Model:       p.model,
			PromptChars: len(req.Prompt),
			Err:         berr,
			Duration:    duration,
			StartedAt:   started,
		})
		return Response{}, berr
	}

	out := Response{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Raw:   resp.RawJSON(),
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		Duration: duration,
	}
	p.cfg.notify(CallEvent{
		Provider:    p.Name(),
		Model:       p.model,
		PromptChars: len(req.Prompt),
		Response:    &out,
		Duration:    duration,
		StartedAt:   started,
	})
	return out, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Remote reports that calls leave the process.
func (p *OpenAIProvider) Remote() bool {
	return true
}

func classifyOpenAIError(err error) *BackendError {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &BackendError{
			Kind:    KindHTTPStatus,
			Status:  apierr.StatusCode,
			Message: err.Error(),
		}
	}
	return &BackendError{Kind: KindNetwork, Message: err.Error()}
}
