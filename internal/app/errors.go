package app

import (
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/telegram"
)

// ErrCyclePanic wraps a panic recovered at the cycle boundary.
var ErrCyclePanic = errors.New("poll cycle panicked")

// ErrorKind names the class of a cycle failure. It is used for report text and metric labels.
type ErrorKind string

const (
	KindTransport     ErrorKind = "transport"
	KindRemoteAPI     ErrorKind = "remote_api"
	KindDecode        ErrorKind = "decode"
	KindInvalidCursor ErrorKind = "invalid_cursor"
	KindInvalidShape  ErrorKind = "invalid_response_shape"
	KindMissingField  ErrorKind = "missing_field"
	KindUnknownStatus ErrorKind = "unknown_status"
	KindNotify        ErrorKind = "notify"
	KindUnexpected    ErrorKind = "unexpected"
)

// ClassifyError maps a cycle error onto its kind.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, practicum.ErrTransport):
		return KindTransport
	case errors.Is(err, practicum.ErrRemoteAPI):
		return KindRemoteAPI
	case errors.Is(err, practicum.ErrDecode):
		return KindDecode
	case errors.Is(err, practicum.ErrInvalidCursor):
		return KindInvalidCursor
	case errors.Is(err, ErrInvalidResponseShape):
		return KindInvalidShape
	case errors.Is(err, homework.ErrMissingField):
		return KindMissingField
	case errors.Is(err, homework.ErrUnknownStatus):
		return KindUnknownStatus
	case errors.Is(err, telegram.ErrNotify):
		return KindNotify
	default:
		return KindUnexpected
	}
}

const failurePrefix = "Сбой в работе программы"

// FailureReport builds the chat message describing a failed cycle.
func FailureReport(err error) string {
	var headline string
	switch ClassifyError(err) {
	case KindTransport:
		headline = "API статусов недоступен"
	case KindRemoteAPI:
		var apiErr *practicum.APIError
		if errors.As(err, &apiErr) {
			headline = fmt.Sprintf("API статусов вернул код %d", apiErr.StatusCode)
		}
	case KindDecode:
		headline = "ответ API не удалось разобрать"
	case KindInvalidShape:
		headline = "в ответе API нет списка работ"
	case KindMissingField, KindUnknownStatus:
		headline = "некорректные данные о работе"
	case KindNotify:
		headline = "не удалось отправить сообщение"
	}

	if headline == "" {
		return fmt.Sprintf("%s: %v", failurePrefix, err)
	}
	return fmt.Sprintf("%s: %s: %v", failurePrefix, headline, err)
}
