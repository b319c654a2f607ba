// Package store defines the session turn log and its implementations.
package store

import (
	"context"

	"github.com/yl-doc/gearadvisor/domain"
)

// Store is a keyed append-only turn log. Sessions are created lazily on first
// append; History of an absent session is empty, not an error. Appends are
// last-writer-wins: callers that overlap requests on the same session key must
// serialize them themselves.
type Store interface {
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)
	Append(ctx context.Context, sessionID string, turns ...domain.Turn) error
	Close() error
}
