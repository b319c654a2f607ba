package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/profile"
	"github.com/yl-doc/gearadvisor/prompt"
)

// runStructuredCompare handles a machine-generated compare request. The
// caller already committed to a full compare→decision flow, so the final
// conclusion call always runs, whatever shape the first reply has.
func (s *Service) runStructuredCompare(ctx context.Context, req domain.ChatRequest, payload *domain.ComparePayload, emit Emitter) error {
	if len(payload.Items) < 2 {
		// Terminal validation failure: no backend call, no history write.
		return emit.Emit(domain.NewTextEvent(tooFewItemsNotice).WithSession(req.SessionID))
	}

	block := profile.FormatBlock(s.profiles.Lookup(req.UserID), profile.SceneChat)
	raw, err := s.generate(ctx, prompt.CompareContext(block, payload.Items), s.prompts.Compare())
	if err != nil {
		return s.failTurn(req, emit, err)
	}

	first, parsed := replyEvent(raw)
	if !parsed {
		log.WithField("session_id", req.SessionID).Warn("compare reply was not a structured object, degrading to text")
	}
	first = first.WithSession(req.SessionID)
	if err := emit.Emit(first); err != nil {
		return err
	}

	return s.concludeCompare(ctx, req, first, emit)
}

// runKeywordCompare handles a compare turn triggered by message keywords.
// Chaining is conditional here: only a genuine product_compare first reply
// leads to the conclusion call, otherwise the first event ends the turn.
func (s *Service) runKeywordCompare(ctx context.Context, req domain.ChatRequest, emit Emitter) error {
	body, err := s.assemble(ctx, req, profile.SceneChat)
	if err != nil {
		return err
	}

	raw, err := s.generate(ctx, body, s.prompts.Compare())
	if err != nil {
		return s.failTurn(req, emit, err)
	}

	first, parsed := replyEvent(raw)
	if !parsed {
		log.WithField("session_id", req.SessionID).Warn("compare reply was not a structured object, degrading to text")
	}
	first = first.WithSession(req.SessionID)
	if err := emit.Emit(first); err != nil {
		return err
	}

	if first.Type != domain.EventProductCompare {
		assistant, err := first.WithSession("").Encode()
		if err != nil {
			return err
		}
		return s.persistTurn(ctx, req.SessionID, req.Message, assistant)
	}

	return s.concludeCompare(ctx, req, first, emit)
}

// concludeCompare is stage two of the compare flow: its input is stage one's
// emitted event, serialized as the next prompt body. The final event is
// persisted before it is emitted.
func (s *Service) concludeCompare(ctx context.Context, req domain.ChatRequest, first domain.OutputEvent, emit Emitter) error {
	serialized, err := first.Encode()
	if err != nil {
		return err
	}

	raw, err := s.generate(ctx, serialized, s.prompts.Final())
	if err != nil {
		return s.failTurn(req, emit, err)
	}

	final, _ := replyEvent(raw)

	assistant, err := final.Encode()
	if err != nil {
		return err
	}
	if err := s.persistTurn(ctx, req.SessionID, req.Message, assistant); err != nil {
		return err
	}

	return emit.Emit(final.WithSession(req.SessionID))
}
