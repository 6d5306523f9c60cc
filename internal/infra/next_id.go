package infra

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DecodeNextID extracts the next game identifier from a games/nextId body.
// Accepted shapes, tried in this order:
//
//	{"nextId": "42"}   JSON object
//	["42"]             JSON array, first element
//	"42"               JSON string
//	42                 bare text
//
// Any other valid JSON ({}, [], null, numbers inside objects...) is a decode
// failure. Bare text must be a single token without JSON structure characters.
func DecodeNextID(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", &DepotError{Kind: ErrEmptyResponse, Path: "games/nextId"}
	}

	if json.Valid(trimmed) {
		var raw any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return "", nextIDError(err)
		}
		switch v := raw.(type) {
		case map[string]any:
			if id, ok := v["nextId"].(string); ok && id != "" {
				return id, nil
			}
		case []any:
			if len(v) > 0 {
				if id, ok := v[0].(string); ok && id != "" {
					return id, nil
				}
			}
		case string:
			if v != "" {
				return v, nil
			}
		case float64:
			// A bare number is plain text that happens to be valid JSON.
			return string(trimmed), nil
		}
		return "", nextIDError(fmt.Errorf("format de nextId non reconnu: %s", truncate(trimmed, 40)))
	}

	text := strings.Trim(string(trimmed), "\"")
	if text == "" || strings.ContainsAny(text, "{}[]\"\n") {
		return "", nextIDError(errors.New("format de nextId non reconnu"))
	}
	return text, nil
}

func nextIDError(err error) error {
	return &DepotError{Kind: ErrDecodeFailure, Method: "GET", Path: "games/nextId", Err: err}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
