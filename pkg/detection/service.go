package detection

import (
	"context"
	"errors"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/httpx"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/prometheus"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/sanitizer"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Analysis is the full outcome of one request: the normalized result, its
// rendered summary, and what sanitization did to the input.
type Analysis struct {
	RequestID    string            `json:"request_id"`
	Result       *Result           `json:"result"`
	Summary      string            `json:"summary"`
	Sanitization sanitizer.Outcome `json:"sanitization"`
}

type Service interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

type ServiceOpts struct {
	UuidProvider func() uuid.UUID
}

type service struct {
	logger       *logrus.Logger
	sanitizer    *sanitizer.Sanitizer
	provider     providers.Client
	providerName string
	providerCfg  *providers.Config
	breaker      httpx.CircuitBreaker
	uuidProvider func() uuid.UUID
}

func NewService(
	logger *logrus.Logger,
	san *sanitizer.Sanitizer,
	provider providers.Client,
	providerName string,
	providerCfg *providers.Config,
	breaker httpx.CircuitBreaker,
	opts *ServiceOpts,
) Service {
	uuidProvider := uuid.New
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &service{
		logger:       logger,
		sanitizer:    san,
		provider:     provider,
		providerName: providerName,
		providerCfg:  providerCfg,
		breaker:      breaker,
		uuidProvider: uuidProvider,
	}
}

// Analyze runs the full pipeline: validate, sanitize, ask the model, and
// normalize the reply. Provider failures and malformed replies degrade to a
// safe placeholder result; only a caller mistake (validation) returns an
// error. Pasted content and model reasoning are never logged.
func (s *service) Analyze(ctx context.Context, text string) (*Analysis, error) {
	requestID := s.uuidProvider().String()

	if err := s.sanitizer.Validate(text); err != nil {
		return nil, err
	}

	outcome := s.sanitizer.Sanitize(text)

	s.logger.WithFields(logrus.Fields{
		"request_id":      requestID,
		"original_length": outcome.OriginalLength,
		"final_length":    outcome.FinalLength,
		"truncated":       outcome.Truncated,
	}).Debug("text sanitized")

	var completion *providers.CompletionResponse
	err := s.breaker.Execute(func() error {
		var askErr error
		completion, askErr = s.provider.Ask(ctx, s.providerCfg, BuildPrompt(outcome.Text))
		return askErr
	})
	if err != nil {
		prometheus.ProviderFailures.WithLabelValues(s.providerName).Inc()
		s.logger.WithError(err).WithField("request_id", requestID).Error("model completion failed")
		return s.degraded(requestID, outcome, "the analysis service is temporarily unavailable"), nil
	}

	result, err := Normalize(completion.Response)
	if err != nil {
		var malformed *MalformedReplyError
		if !errors.As(err, &malformed) {
			return nil, err
		}
		prometheus.MalformedReplies.Inc()
		s.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID,
			"model":      completion.Model,
		}).Warn("model reply failed normalization")
		return s.degraded(requestID, outcome, "the model returned an unreadable reply"), nil
	}

	prometheus.DetectionTotal.WithLabelValues(boolLabel(result.AIFlag), string(result.Confidence)).Inc()

	return &Analysis{
		RequestID:    requestID,
		Result:       result,
		Summary:      FormatSummary(result),
		Sanitization: outcome,
	}, nil
}

func (s *service) degraded(requestID string, outcome sanitizer.Outcome, description string) *Analysis {
	result := NewErrorResult(description)
	return &Analysis{
		RequestID:    requestID,
		Result:       result,
		Summary:      FormatSummary(result),
		Sanitization: outcome,
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
