package generator

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider generates copy through the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
	cfg    Config
}

// NewAnthropicProvider creates a new Anthropic backend.
func NewAnthropicProvider(cfg Config) (*AnthropicProvider, error) {
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
		model = DefaultModels["anthropic"]
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
		cfg:    cfg,
	}, nil
}

// Generate sends one synchronous request. All text-typed blocks of the
// response are concatenated into a single string.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (Response, error) {
	req.applyDefaults()
	started := time.Now()

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	duration := time.Since(started)

	if err != nil {
		berr := classifyAnthropicError(err)
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

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}
	if text == "" {
		berr := &BackendError{Kind: KindBadResponse, Message: "no text blocks in response"}
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
		Text:  text,
		Model: string(resp.Model),
		Raw:   resp.RawJSON(),
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
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
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Remote reports that calls leave the process.
func (p *AnthropicProvider) Remote() bool {
	return true
}

func classifyAnthropicError(err error) *BackendError {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &BackendError{
			Kind:    KindHTTPStatus,
			Status:  apierr.StatusCode,
			Message: err.Error(),
		}
	}
	return &BackendError{Kind: KindNetwork, Message: err.Error()}
}
