package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_KnownStatuses(t *testing.T) {
	for _, status := range []Status{StatusApproved, StatusReviewing, StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			msg, err := Format(Record{Name: "HW1", Status: status})
			require.NoError(t, err)

			verdict, ok := Verdict(status)
			require.True(t, ok)
			assert.Contains(t, msg, "HW1")
			assert.Contains(t, msg, verdict)
			assert.Equal(t, `Изменился статус проверки работы "HW1". `+verdict, msg)
		})
	}
}

func TestFormat_UnknownStatus(t *testing.T) {
	for _, status := range []Status{"unknown", "APPROVED", "done"} {
		_, err := Format(Record{Name: "HW1", Status: status})
		assert.ErrorIs(t, err, ErrUnknownStatus, "status %q", status)
	}
}

func TestFormat_MissingFields(t *testing.T) {
	_, err := Format(Record{Status: StatusApproved})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "homework_name")

	_, err = Format(Record{Name: "HW1"})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "status")
}

func TestFormat_Idempotent(t *testing.T) {
	r := Record{Name: "hw05_final", Status: StatusRejected}

	first, err := Format(r)
	require.NoError(t, err)
	second, err := Format(r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, StatusReviewing.Known())
	assert.False(t, Status("").Known())
}
