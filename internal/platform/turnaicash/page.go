package turnaicash

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is the pagination envelope the upstream uses for most list
// endpoints: {count, next, previous, results}.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodeList normalizes the two list shapes the upstream emits for
// nominally similar endpoints: the pagination envelope and a bare JSON
// array. A bare array becomes a single-page envelope with no next/previous
// links. Neither shape is assumed; the payload decides.
func DecodeList[T any](raw []byte) (*Page[T], error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return &Page[T]{Results: []T{}}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list array: %w", err)
		}
		return &Page[T]{Count: len(items), Results: items}, nil
	}

	var page Page[T]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	return &page, nil
}
