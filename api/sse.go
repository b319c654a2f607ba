package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/yl-doc/gearadvisor/domain"
)

// SSEEmitter writes events as `data:` frames delimited by blank lines, in
// emit order, flushing after every frame. No buffering or reordering.
type SSEEmitter struct {
	w       io.Writer
	flusher http.Flusher
}

// NewSSEEmitter creates an emitter over an open response.
func NewSSEEmitter(w io.Writer, flusher http.Flusher) *SSEEmitter {
	return &SSEEmitter{w: w, flusher: flusher}
}

// Emit writes one framed event.
func (e *SSEEmitter) Emit(event domain.OutputEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", data); err != nil {
		return err
	}
	e.flusher.Flush()
	return nil
}
