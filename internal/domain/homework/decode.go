package homework

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// encoding/json matches object keys case-insensitively. The API contract uses exact
// lower-case keys, so both wire types pick their fields out of a raw object by name.

var errNotObject = errors.New("expected a JSON object")

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// UnmarshalJSON keeps "homeworks" raw and requires "current_date", when present, to be an integer.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("response: %w", err)
	}

	*e = Envelope{}
	if raw, ok := fields["homeworks"]; ok {
		e.Homeworks = raw
	}
	if raw, ok := fields["current_date"]; ok && !isNull(raw) {
		var ts int64
		if err := json.Unmarshal(raw, &ts); err != nil {
			return fmt.Errorf("current_date: %w", err)
		}
		e.CurrentDate = &ts
	}
	return nil
}

// UnmarshalJSON requires the entry to be an object whose known fields are strings.
// Absent fields stay empty and are reported by Format.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("homework entry: %w", err)
	}

	*r = Record{}
	if raw, ok := fields["homework_name"]; ok {
		if err := json.Unmarshal(raw, &r.Name); err != nil {
			return fmt.Errorf("homework_name: %w", err)
		}
	}
	if raw, ok := fields["status"]; ok {
		var status string
		if err := json.Unmarshal(raw, &status); err != nil {
			return fmt.Errorf("status: %w", err)
		}
		r.Status = Status(status)
	}
	return nil
}
