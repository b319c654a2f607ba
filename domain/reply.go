package domain

import (
	"bytes"
	"encoding/json"
)

// ParseReply classifies a raw backend reply as either a well-formed OutputEvent
// or free text. The second return value is false when the reply is not a JSON
// object carrying a recognized type tag and an object data field; callers must
// then wrap the raw text as a text event instead of dropping the reply.
func ParseReply(raw string) (OutputEvent, bool) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return OutputEvent{}, false
	}

	var ev OutputEvent
	if err := json.Unmarshal(trimmed, &ev); err != nil {
		return OutputEvent{}, false
	}

	switch ev.Type {
	case EventText, EventProductCompare, EventProductList:
	default:
		return OutputEvent{}, false
	}

	data := bytes.TrimSpace(ev.Data)
	if len(data) == 0 || data[0] != '{' {
		return OutputEvent{}, false
	}

	return ev, true
}

// PurchaseReply is the structured reply requested by the purchase pipeline.
type PurchaseReply struct {
	Summary string    `json:"summary"`
	Items   []Product `json:"items"`
}

// ParsePurchaseReply decodes a purchase-mode backend reply. The second return
// value is false when the reply is not a JSON object.
func ParsePurchaseReply(raw string) (*PurchaseReply, bool) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var reply PurchaseReply
	if err := json.Unmarshal(trimmed, &reply); err != nil {
		return nil, false
	}
	return &reply, true
}
