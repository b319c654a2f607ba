package domain

import (
	"bytes"
	"encoding/json"
)

// IntentCompareProducts is the intent tag of a structured compare request.
const IntentCompareProducts = "compare_products"

// CompareItem is one caller-supplied candidate in a comparison.
type CompareItem struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// ComparePayload is a machine-generated compare request carried in the message
// body, bypassing keyword classification.
type ComparePayload struct {
	Intent string        `json:"intent"`
	Items  []CompareItem `json:"items"`
}

// DecodeComparePayload tries to read the message as a structured compare
// request. It returns nil when the message is not one; that is not an error,
// the message just goes through keyword classification instead.
func DecodeComparePayload(message string) *ComparePayload {
	trimmed := bytes.TrimSpace([]byte(message))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var payload ComparePayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil
	}
	if payload.Intent != IntentCompareProducts {
		return nil
	}
	return &payload
}
