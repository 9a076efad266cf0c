// Package generator provides the pluggable content backends that turn a
// rendered prompt into marketing copy.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/mediavision/centrepage/internal/property"
)

// Request is a single generation request. Remote backends consume the
// rendered prompt; the template backend formats the record directly.
type Request struct {
	Record      property.Record
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage tracks token consumption for remote calls.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the result of a successful generation.
type Response struct {
	Text  string
	Model string
	// Raw is the provider's raw payload, snapshotted for inspection.
	// Empty for local backends.
	Raw      string
	Usage    Usage
	Duration time.Duration
}

// Provider is the core abstraction over content backends.
type Provider interface {
	// Generate produces marketing copy for the prompt. Failures are
	// *BackendError values; callers branch on the error, never on the
	// shape of the returned text.
	Generate(ctx context.Context, req Request) (Response, error)

	// Name returns the provider identifier.
	Name() string

	// Remote reports whether calls leave the process. The batch
	// pipeline only throttles remote backends.
	Remote() bool
}

// ErrorKind classifies backend failures.
type ErrorKind string

const (
	// KindHTTPStatus is a non-success status from the remote endpoint.
	KindHTTPStatus ErrorKind = "http_status"
	// KindNetwork is a transport-level failure before any response.
	KindNetwork ErrorKind = "network"
	// KindBadResponse is a success status with an unusable payload.
	KindBadResponse ErrorKind = "bad_response"
)

// BackendError is a structured generation failure. Each call is
// best-effort and one-shot; there is no retry or circuit-breaking here.
type BackendError struct {
	Kind    ErrorKind
	Status  int // HTTP status for KindHTTPStatus, zero otherwise
	Message string
}

func (e *BackendError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("backend error (%s, status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (%s): %s", e.Kind, e.Message)
}

// Config holds common backend configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// Observer receives a CallEvent after every invocation. Optional.
	Observer Observer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 60 * time.Second,
	}
}

// defaults applied when the request leaves them zero.
const (
	defaultMaxTokens   = 1500
	defaultTemperature = 0.7
)

func (r *Request) applyDefaults() {
	if r.MaxTokens == 0 {
		r.MaxTokens = defaultMaxTokens
	}
	if r.Temperature == 0 {
		r.Temperature = defaultTemperature
	}
}
