package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/internal/logging"
)

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWriter(&buf, logging.Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	log.Info("added", "result", "⟨6, 9⟩")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "added", rec["msg"])
	assert.Equal(t, "⟨6, 9⟩", rec["result"])
}

func TestNewWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWriter(&buf, logging.Config{Level: "WARN"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown", "k", 1)
	log.Error("shown too")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "k=1")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestNewWriter_BadConfig(t *testing.T) {
	_, err := logging.NewWriter(&bytes.Buffer{}, logging.Config{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrBadConfig)

	_, err = logging.NewWriter(&bytes.Buffer{}, logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrBadConfig)
}
