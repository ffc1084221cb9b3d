package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakery-go/internal/infrastructure/config"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/logging"
)

func TestRunLogger_WritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logging.NewRunLogger(logger).Log("WARNING", "Production plan is empty", map[string]interface{}{
		"run_id": "produce-1234abcd",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Production plan is empty", entry["msg"])
	assert.Equal(t, "produce-1234abcd", entry["run_id"])
}

func TestRunLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(config.LoggingConfig{Level: "error", Format: "text"}, &buf)
	require.NoError(t, err)

	logging.NewRunLogger(logger).Log("INFO", "Batch produced", nil)

	assert.Empty(t, buf.String())
}

func TestRunLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)

	logging.NewRunLogger(logger).Log("NOTICE", "hello", nil)

	assert.Contains(t, buf.String(), "level=INFO")
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)

	_, err = logging.New(config.LoggingConfig{Level: "info", Output: "file"})
	assert.Error(t, err)
}
