package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "warn", Environment: "production"}, &buf)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.WithField("cycle_id", "abc").Warn("cycle failed")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cycle failed", entry["msg"])
	assert.Equal(t, "abc", entry["cycle_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "loud", Environment: "development"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}
