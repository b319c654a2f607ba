// Package service runs the staged-response pipelines: it classifies the turn,
// executes the selected pipeline against the generation backend, emits output
// events in production order and persists the completed turn.
package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/gateway"
	"github.com/yl-doc/gearadvisor/intent"
	"github.com/yl-doc/gearadvisor/profile"
	"github.com/yl-doc/gearadvisor/prompt"
	"github.com/yl-doc/gearadvisor/store"
)

// ProfileLookup resolves a user id to a raw attribute map.
type ProfileLookup interface {
	Lookup(userID string) map[string]string
}

// Emitter writes one event to the caller. Events must reach the caller in
// emit order; the second compare event is only meaningful after the first.
type Emitter interface {
	Emit(event domain.OutputEvent) error
}

const (
	tooFewItemsNotice = "至少需要两个商品才能对比"
	gatewayDownNotice = "生成服务暂时不可用，请稍后再试"
)

// Service orchestrates one conversation turn per Respond call. Instances are
// safe for concurrent use across sessions; overlapping turns on the same
// session key race on the store and must be serialized by the caller.
type Service struct {
	store      store.Store
	generator  gateway.Generator
	profiles   ProfileLookup
	classifier *intent.Classifier
	prompts    prompt.Set
	genTimeout time.Duration
}

// New creates the orchestrator service.
func New(st store.Store, gen gateway.Generator, profiles ProfileLookup, classifier *intent.Classifier, prompts prompt.Set, genTimeout time.Duration) *Service {
	return &Service{
		store:      st,
		generator:  gen,
		profiles:   profiles,
		classifier: classifier,
		prompts:    prompts,
		genTimeout: genTimeout,
	}
}

// Respond runs one turn. req must be validated and carry a session id.
func (s *Service) Respond(ctx context.Context, req domain.ChatRequest, emit Emitter) error {
	cls, err := s.classifier.Classify(ctx, req.Message)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	log.WithFields(log.Fields{
		"session_id": req.SessionID,
		"intent":     cls.Intent,
	}).Info("dispatching pipeline")

	switch cls.Intent {
	case intent.StructuredCompare:
		return s.runStructuredCompare(ctx, req, cls.Payload, emit)
	case intent.KeywordCompare:
		return s.runKeywordCompare(ctx, req, emit)
	case intent.Purchase:
		return s.runPurchase(ctx, req, emit)
	default:
		return s.runChat(ctx, req, emit)
	}
}

// generate runs one backend call under the configured deadline. A zero
// timeout leaves the caller's deadline in place.
func (s *Service) generate(ctx context.Context, body, system string) (string, error) {
	if s.genTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.genTimeout)
		defer cancel()
	}

	return s.generator.Generate(ctx, &gateway.Request{
		Prompt:            body,
		SystemInstruction: system,
	})
}

// failTurn reports a failed backend call as a terminal text event. Nothing is
// persisted for the turn.
func (s *Service) failTurn(req domain.ChatRequest, emit Emitter, err error) error {
	log.WithField("session_id", req.SessionID).WithError(err).Error("generation failed, aborting turn")
	if emitErr := emit.Emit(domain.NewTextEvent(gatewayDownNotice).WithSession(req.SessionID)); emitErr != nil {
		return emitErr
	}
	return fmt.Errorf("generation failed: %w", err)
}

// persistTurn appends the user turn and the final assistant result, in that
// order. Intermediate pipeline results never reach history.
func (s *Service) persistTurn(ctx context.Context, sessionID, userMsg, assistant string) error {
	return s.store.Append(ctx, sessionID,
		domain.Turn{Role: domain.RoleUser, Content: userMsg},
		domain.Turn{Role: domain.RoleAssistant, Content: assistant},
	)
}

// assemble builds the freeform prompt body from profile block, history and
// the current message.
func (s *Service) assemble(ctx context.Context, req domain.ChatRequest, scene profile.Scene) (string, error) {
	history, err := s.store.History(ctx, req.SessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}

	block := profile.FormatBlock(s.profiles.Lookup(req.UserID), scene)
	return prompt.Assemble(block, history, req.Message), nil
}

// replyEvent maps a raw backend reply onto the wire contract: a well-formed
// reply passes through, anything else is wrapped as a text event. The raw
// text is never dropped.
func replyEvent(raw string) (domain.OutputEvent, bool) {
	if ev, ok := domain.ParseReply(raw); ok {
		return ev, true
	}
	return domain.NewTextEvent(raw), false
}
