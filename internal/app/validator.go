package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

var ErrInvalidResponseShape = errors.New("unexpected status API response shape")

// ValidateResponse checks that the envelope carries a homeworks list and decodes its entries.
// Only the container shape is checked here; field presence and status values are checked
// by homework.Format when a record is actually used.
func ValidateResponse(envelope *homework.Envelope) ([]homework.Record, error) {
	if envelope == nil {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidResponseShape)
	}

	raw := bytes.TrimSpace(envelope.Homeworks)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: homeworks key is missing", ErrInvalidResponseShape)
	}
	if raw[0] != '[' {
		return nil, fmt.Errorf("%w: homeworks is not a list", ErrInvalidResponseShape)
	}

	var records []homework.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: malformed homeworks entry: %w", ErrInvalidResponseShape, err)
	}
	return records, nil
}
