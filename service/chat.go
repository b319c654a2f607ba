package service

import (
	"context"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/profile"
)

// runChat handles a plain conversation turn: one backend call with the base
// persona instruction only, one text event, raw reply persisted unmodified.
func (s *Service) runChat(ctx context.Context, req domain.ChatRequest, emit Emitter) error {
	body, err := s.assemble(ctx, req, profile.SceneChat)
	if err != nil {
		return err
	}

	raw, err := s.generate(ctx, body, s.prompts.Chat())
	if err != nil {
		return s.failTurn(req, emit, err)
	}

	if err := s.persistTurn(ctx, req.SessionID, req.Message, raw); err != nil {
		return err
	}

	return emit.Emit(domain.NewTextEvent(raw).WithSession(req.SessionID))
}
