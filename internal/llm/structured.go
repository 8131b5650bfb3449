package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// CleanJSONPayload removes surrounding whitespace, markdown fence backticks
// and a leading "json" language tag from a model answer.
func CleanJSONPayload(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	return strings.TrimSpace(s)
}

// DecodeJSON decodes exactly one JSON value of type T from raw after
// CleanJSONPayload. Surrounding prose or trailing data is an error.
// If validator is non-nil, the decoded value is validated before return.
func DecodeJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	cleaned := CleanJSONPayload(raw)
	if cleaned == "" {
		return zero, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	var result T
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := ensureEOF(dec); err != nil {
		return zero, err
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

func ensureEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return fmt.Errorf("%w: trailing data after JSON value: %s", ErrInvalidOutput, bytes.TrimSpace(extra))
}
