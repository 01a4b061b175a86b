// Package summarize reduces article text to a short synopsis using a
// hosted summarization model.
//
// Summarization never fails outward: any backend problem yields a
// Degraded result carrying the original text, so the caller can always
// display something.
package summarize

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"newsbreeze/internal/config"
	"newsbreeze/internal/logging"
)

const (
	// defaultEndpoint is the hosted Hugging Face inference API.
	defaultEndpoint = "https://api-inference.huggingface.co"

	// maxInputTokens bounds the input to the model's context limit.
	maxInputTokens = 1024
)

// Result is the outcome of a summarization attempt. Text is always
// usable; when Degraded is set it holds the original input and Reason
// says what went wrong.
type Result struct {
	Text     string
	Degraded bool
	Reason   string
}

// Summarizer calls a pretrained sequence-to-sequence model over HTTP.
// Construct one per application and share it; it is safe for use from a
// single interactive session.
type Summarizer struct {
	backend   *hfClient
	maxLength int
	minLength int
	limiter   *rate.Limiter
	credOnce  sync.Once
	hasKey    bool
}

// New creates a Summarizer from configuration. An empty endpoint uses the
// hosted inference API; an empty API key falls back to anonymous access.
func New(cfg config.SummarizerConfig) *Summarizer {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Summarizer{
		backend:   newHFClient(endpoint, cfg.Model, cfg.APIKey),
		maxLength: cfg.MaxLength,
		minLength: cfg.MinLength,
		limiter:   rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		hasKey:    cfg.APIKey != "",
	}
}

// Summarize produces a short synopsis of text. Inputs below the minimum
// word count are returned unchanged without a model call.
func (s *Summarizer) Summarize(ctx context.Context, text string) Result {
	words := strings.Fields(text)
	if len(words) < s.minLength {
		return Result{Text: text}
	}

	s.credOnce.Do(func() {
		if !s.hasKey {
			logging.Warn("summarize: no API key configured, querying anonymously")
		}
	})

	// The hosted API tokenizes server-side, so the context-window cap is
	// applied per whitespace token here; that undershoots the subword
	// count and stays within the model's limit.
	input := text
	if len(words) > maxInputTokens {
		input = strings.Join(words[:maxInputTokens], " ")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return s.degrade(text, "rate limiter: "+err.Error())
	}

	summary, err := s.backend.Summarize(ctx, input, s.maxLength, s.minLength)
	if err != nil {
		return s.degrade(text, err.Error())
	}
	if summary == "" {
		return s.degrade(text, "backend returned an empty summary")
	}

	return Result{Text: summary}
}

func (s *Summarizer) degrade(original, reason string) Result {
	logging.Error("summarize: falling back to original text", "reason", reason)
	return Result{Text: original, Degraded: true, Reason: reason}
}
