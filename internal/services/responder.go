package services

import (
	"context"
	"log/slog"

	"onoe-chat/internal/models"
)

const (
	ReplyOffTopic     = "I focus on ONOE facts. How can I help you with election data?"
	ReplyModelFailure = "I'm having trouble connecting to my AI. Please try again later."
)

// Stage names the pipeline step that produced an answer.
type Stage string

const (
	StageRule     Stage = "rule"
	StageDeflect  Stage = "deflect"
	StageModel    Stage = "model"
	StageFallback Stage = "fallback"
)

// Generator produces a model answer for an on-topic question.
type Generator interface {
	Generate(ctx context.Context, question string) (string, error)
}

type Answer struct {
	Reply    string
	Stage    Stage
	Redacted bool
}

// Responder runs the chat pipeline: canned rules, topic filter, model
// fallback, then blind-mode redaction. It holds no per-request state and is
// safe for concurrent use.
type Responder struct {
	generator Generator
	logger    *slog.Logger
}

func NewResponder(generator Generator, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{generator: generator, logger: logger}
}

func (r *Responder) Respond(ctx context.Context, req models.ChatRequest) Answer {
	if reply, ok := MatchRule(req.Message); ok {
		return finish(Answer{Reply: reply, Stage: StageRule}, req.Blind)
	}

	// The off-topic reply is final and is not redacted, even in blind mode.
	if !IsONOERelated(req.Message) {
		return Answer{Reply: ReplyOffTopic, Stage: StageDeflect}
	}

	// Once started, the model call is not cancelled with the request.
	reply, err := r.generator.Generate(context.WithoutCancel(ctx), req.Message)
	if err != nil {
		r.logger.Error("gemini_generate_failed", "error", err)
		return finish(Answer{Reply: ReplyModelFailure, Stage: StageFallback}, req.Blind)
	}

	return finish(Answer{Reply: reply, Stage: StageModel}, req.Blind)
}

func finish(a Answer, blind bool) Answer {
	if blind {
		a.Reply = Redact(a.Reply)
		a.Redacted = true
	}
	return a
}
