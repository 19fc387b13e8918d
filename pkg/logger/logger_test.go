package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("warn").GetLevel())
}

func TestNew_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, New("chatty").GetLevel())
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("info", &buf)

	log.WithField("service", "incident").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "incident", entry["service"])
	assert.Equal(t, "info", entry["level"])
}
