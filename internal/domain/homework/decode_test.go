package homework

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_ExactKeys(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"HOMEWORKS":[],"Current_Date":1000}`), &e))

	assert.Nil(t, e.Homeworks)
	assert.Nil(t, e.CurrentDate)
}

func TestEnvelope_Decode(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"homeworks":[{"homework_name":"HW1"}],"current_date":1000}`), &e))

	assert.JSONEq(t, `[{"homework_name":"HW1"}]`, string(e.Homeworks))
	require.NotNil(t, e.CurrentDate)
	assert.Equal(t, int64(1000), *e.CurrentDate)
}

func TestEnvelope_NullDateIsAbsent(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"homeworks":[],"current_date":null}`), &e))
	assert.Nil(t, e.CurrentDate)
}

func TestEnvelope_RejectsNonObject(t *testing.T) {
	for _, body := range []string{`null`, `[1,2]`, `"text"`, `42`} {
		var e Envelope
		assert.Error(t, json.Unmarshal([]byte(body), &e), body)
	}
}

func TestEnvelope_RejectsNonIntegerDate(t *testing.T) {
	for _, body := range []string{`{"current_date":"yesterday"}`, `{"current_date":10.5}`} {
		var e Envelope
		assert.Error(t, json.Unmarshal([]byte(body), &e), body)
	}
}

func TestRecord_ExactKeys(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"Homework_Name":"HW1","STATUS":"approved"}`), &r))
	assert.Equal(t, Record{}, r)

	_, err := Format(r)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRecord_NonStringFields(t *testing.T) {
	for _, body := range []string{
		`{"homework_name":5,"status":"approved"}`,
		`{"homework_name":"HW1","status":["approved"]}`,
		`"HW1"`,
	} {
		var r Record
		assert.Error(t, json.Unmarshal([]byte(body), &r), body)
	}
}
