package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("famjamjam", "development", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("famjamjam", "production", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("famjamjam", "production", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("famjamjam", "production", "loud").GetLevel())
}

func TestLogWarn_DoesNotMutateFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	fields := logrus.Fields{"group_id": "g1"}
	LogWarn(logger, "index failed", errors.New("es down"), fields)
	assert.NotContains(t, fields, "error")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "es down", entry["error"])
	assert.Equal(t, "g1", entry["group_id"])

	LogWarn(nil, "ignored", nil, nil)
	LogError(nil, "ignored", nil, nil)
	LogInfo(nil, "ignored", nil)
}

func TestLog_TypedNilLogger(t *testing.T) {
	var logger *logrus.Logger
	assert.NotPanics(t, func() {
		LogWarn(logger, "ignored", errors.New("x"), nil)
		LogError(logger, "ignored", nil, nil)
		LogInfo(logger, "ignored", logrus.Fields{"k": "v"})
	})
}
