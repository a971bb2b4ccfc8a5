package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/healthmate/platform/internal/observability/metrics"
	"github.com/healthmate/platform/pkg/logging"
)

// retryBackoff is the pause before the single retry allowed per call.
const retryBackoff = 500 * time.Millisecond

var advisorTracer = otel.Tracer("healthmate.internal.advisor")

// Service wraps the advisor client with a per-call timeout, one retry and
// fallback messaging. A failed upstream call degrades to a fallback message
// for conversational flows instead of losing the request.
type Service struct {
	client      Client
	transcripts *TranscriptStore
	timeout     time.Duration
	metrics     *metrics.AdvisorMetrics
	logger      *logging.Logger
	sleep       func(context.Context, time.Duration) error
}

// Assessment is an advisory text result. Fallback marks a degraded response
// produced without the upstream service.
type Assessment struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// NewService constructs the advisor service. Timeout bounds every upstream
// call; zero applies the 30s default.
func NewService(client Client, timeout time.Duration, logger *logging.Logger) *Service {
	if client == nil {
		panic("advisor: client required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client:  client,
		timeout: timeout,
		logger:  logger,
		sleep:   sleepCtx,
	}
}

// WithTranscripts attaches session history storage for the Ask flow.
func (s *Service) WithTranscripts(store *TranscriptStore) *Service {
	s.transcripts = store
	return s
}

// WithMetrics attaches advisor counters.
func (s *Service) WithMetrics(m *metrics.AdvisorMetrics) *Service {
	s.metrics = m
	return s
}

// SymptomCheck runs the structured assessment. Upstream failure yields a
// fallback assessment, not an error.
func (s *Service) SymptomCheck(ctx context.Context, symptoms string) (*Assessment, error) {
	text, err := s.withRetry(ctx, "symptom_check", func(ctx context.Context) (string, error) {
		return s.client.AnalyzeSymptoms(ctx, symptoms)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			return nil, err
		}
		s.logger.Warn("symptom check degraded to fallback", "error", err)
		return &Assessment{Text: symptomFallbackMessage, Fallback: true}, nil
	}
	return &Assessment{Text: text}, nil
}

// Ask answers a health question with session history. The transcript write
// happens strictly after the upstream call returns, so a disconnect during
// the call leaves no partial rows.
func (s *Service) Ask(ctx context.Context, sessionID, query string) (*Assessment, error) {
	history, err := s.transcripts.List(ctx, sessionID)
	if err != nil {
		// History is an enhancement; answer without it rather than failing.
		s.logger.Warn("transcript unavailable, answering without history", "error", err)
		history = nil
	}

	text, err := s.withRetry(ctx, "ask", func(ctx context.Context) (string, error) {
		return s.client.Ask(ctx, query, history)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			return nil, err
		}
		s.logger.Warn("ask degraded to fallback", "error", err)
		return &Assessment{Text: askFallbackMessage, Fallback: true}, nil
	}

	if sessionID != "" {
		writeCtx := context.WithoutCancel(ctx)
		if err := s.transcripts.Append(writeCtx, sessionID, Turn{Role: RoleUser, Content: query}); err != nil {
			s.logger.Warn("failed to persist user turn", "error", err)
		} else if err := s.transcripts.Append(writeCtx, sessionID, Turn{Role: RoleAssistant, Content: text}); err != nil {
			s.logger.Warn("failed to persist assistant turn", "error", err)
		}
	}
	return &Assessment{Text: text}, nil
}

// AnalyzeReport produces a summary of a raw document. Unlike the
// conversational flows this surfaces ErrAdvisorUnavailable: the caller
// decides whether to store anything, and nothing is written here.
func (s *Service) AnalyzeReport(ctx context.Context, document []byte, mimeType string) (string, error) {
	text, err := s.withRetry(ctx, "report_analysis", func(ctx context.Context) (string, error) {
		return s.client.AnalyzeReport(ctx, document, mimeType)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyDocument) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrAdvisorUnavailable, err)
	}
	return text, nil
}

// withRetry bounds each attempt with the configured timeout and retries
// exactly once after a short backoff.
func (s *Service) withRetry(ctx context.Context, flow string, call func(context.Context) (string, error)) (string, error) {
	ctx, span := advisorTracer.Start(ctx, "advisor."+flow)
	defer span.End()
	span.SetAttributes(attribute.String("advisor.flow", flow))

	start := time.Now()
	text, err := s.attempt(ctx, call)
	if err == nil {
		s.observe(flow, "ok", start)
		return text, nil
	}
	if errors.Is(err, ErrEmptyPrompt) || errors.Is(err, ErrEmptyDocument) {
		s.observe(flow, "rejected", start)
		return "", err
	}
	span.RecordError(err)

	s.logger.Warn("advisor call failed, retrying once", "flow", flow, "error", err)
	if sleepErr := s.sleep(ctx, retryBackoff); sleepErr != nil {
		s.observe(flow, "canceled", start)
		return "", sleepErr
	}

	span.SetAttributes(attribute.Bool("advisor.retried", true))
	text, retryErr := s.attempt(ctx, call)
	if retryErr != nil {
		span.RecordError(retryErr)
		s.observe(flow, "failed", start)
		return "", retryErr
	}
	s.observe(flow, "ok_after_retry", start)
	return text, nil
}

func (s *Service) attempt(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return call(attemptCtx)
}

func (s *Service) observe(flow, status string, start time.Time) {
	s.metrics.ObserveRequest(flow, status)
	s.metrics.ObserveLatency(flow, time.Since(start).Seconds())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
