package homework

import "fmt"

// Format builds the status-change notification for a single record.
// The result depends only on the record, so repeated calls yield the same text.
func Format(r Record) (string, error) {
	if r.Name == "" {
		return "", fmt.Errorf("%w: homework_name", ErrMissingField)
	}
	if r.Status == "" {
		return "", fmt.Errorf("%w: status", ErrMissingField)
	}

	verdict, ok := Verdict(r.Status)
	if !ok {
		return "", fmt.Errorf("%w: %q (homework %q)", ErrUnknownStatus, r.Status, r.Name)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", r.Name, verdict), nil
}
