package service

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/profile"
)

// runPurchase handles a purchase-assist turn with a single backend call that
// must return the structured purchase object.
func (s *Service) runPurchase(ctx context.Context, req domain.ChatRequest, emit Emitter) error {
	body, err := s.assemble(ctx, req, profile.ScenePurchase)
	if err != nil {
		return err
	}

	raw, err := s.generate(ctx, body, s.prompts.Purchase())
	if err != nil {
		return s.failTurn(req, emit, err)
	}

	reply, ok := domain.ParsePurchaseReply(raw)
	if !ok {
		// Aborted turn: the raw reply is surfaced but kept out of history, so
		// made-up item ids cannot poison future context.
		log.WithField("session_id", req.SessionID).Warn("purchase reply was not valid JSON, turn not persisted")
		return emit.Emit(domain.NewTextEvent(raw).WithSession(req.SessionID))
	}

	if err := emit.Emit(domain.NewTextEvent(reply.Summary).WithSession(req.SessionID)); err != nil {
		return err
	}
	if err := emit.Emit(domain.NewProductListEvent(reply.Items).WithSession(req.SessionID)); err != nil {
		return err
	}

	assistant, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return s.persistTurn(ctx, req.SessionID, req.Message, string(assistant))
}
