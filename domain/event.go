// Package domain defines the core domain models for the advisor.
package domain

import "encoding/json"

// EventType discriminates the OutputEvent union.
type EventType string

const (
	EventText           EventType = "text"
	EventProductCompare EventType = "product_compare"
	EventProductList    EventType = "product_list"
)

// OutputEvent is one framed unit of streamed response content.
// Every event put on the wire carries the session key that produced it.
type OutputEvent struct {
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data"`
	SessionID string          `json:"session_id,omitempty"`
}

// TextData is the payload of a text event.
type TextData struct {
	Text string `json:"text"`
}

// CompareData is the payload of a product_compare event.
type CompareData struct {
	Focus      string         `json:"focus"`
	Items      []CompareEntry `json:"items"`
	Suggestion string         `json:"suggestion"`
}

// CompareEntry is one side of a comparison.
type CompareEntry struct {
	Name string   `json:"name"`
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// ProductListData is the payload of a product_list event.
type ProductListData struct {
	Items []Product `json:"items"`
}

// Product is one recommended item in a purchase reply.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	OfficialSite string `json:"official_site"`
	SearchHint   string `json:"search_hint"`
	Reason       string `json:"reason"`
	Category     string `json:"category"`
}

// NewTextEvent wraps plain text as a text event.
func NewTextEvent(text string) OutputEvent {
	data, _ := json.Marshal(TextData{Text: text})
	return OutputEvent{Type: EventText, Data: data}
}

// NewProductListEvent wraps recommended items as a product_list event.
func NewProductListEvent(items []Product) OutputEvent {
	if items == nil {
		items = []Product{}
	}
	data, _ := json.Marshal(ProductListData{Items: items})
	return OutputEvent{Type: EventProductList, Data: data}
}

// WithSession returns a copy of the event tagged with the session key.
func (e OutputEvent) WithSession(sessionID string) OutputEvent {
	e.SessionID = sessionID
	return e
}

// Encode serializes the event for the wire or for history persistence.
func (e OutputEvent) Encode() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
