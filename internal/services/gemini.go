package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("gemini returned no text")

// contentGenerator is the slice of *genai.GenerativeModel the service uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	client   *genai.Client
	model    contentGenerator
	timeout  time.Duration
	rateChan chan struct{} // Token bucket
	logger   *slog.Logger
}

// NewGeminiService creates the process-wide model client. The persona is
// fixed for the lifetime of the service.
func NewGeminiService(apiKey, modelName string, persona Persona, concurrentReqs int, timeout time.Duration, logger *slog.Logger) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(persona.Instruction)},
	}

	s := newGeminiService(model, concurrentReqs, timeout, logger)
	s.client = client
	return s, nil
}

func newGeminiService(model contentGenerator, concurrentReqs int, timeout time.Duration, logger *slog.Logger) *GeminiService {
	if concurrentReqs <= 0 {
		concurrentReqs = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Token bucket for rate limiting
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		model:    model,
		timeout:  timeout,
		rateChan: rateChan,
		logger:   logger,
	}
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for Gemini rate slot: %w", ctx.Err())
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate asks the model to answer a single question. The configured
// timeout covers both waiting for a slot and the call itself.
func (s *GeminiService) Generate(ctx context.Context, question string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			s.logger.Warn("gemini_unexpected_finish", "candidate", i, "finish_reason", cand.FinishReason.String())
		}
	}

	// Whitespace-only output counts as empty, but the text is returned as the
	// model produced it.
	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
