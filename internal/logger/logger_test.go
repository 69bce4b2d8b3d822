package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func capture() *bytes.Buffer {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf
}

func TestInfo(t *testing.T) {
	buf := capture()
	Info("summary computed", "org_id", "abc")
	assert.Contains(t, buf.String(), "summary computed")
	assert.Contains(t, buf.String(), "org_id")
}

func TestError(t *testing.T) {
	buf := capture()
	Error("query failed")
	assert.Contains(t, buf.String(), "query failed")
}

func TestDebugf(t *testing.T) {
	buf := capture()
	Debugf("resolved range of %d days", 7)
	assert.Contains(t, buf.String(), "resolved range of 7 days")
}

func TestWithError(t *testing.T) {
	buf := capture()
	WithError(assert.AnError).Info("degraded field")
	out := buf.String()
	assert.Contains(t, out, "degraded field")
	assert.Contains(t, out, "error")
}

func TestWithFields(t *testing.T) {
	buf := capture()
	WithFields(map[string]any{"company_id": "c1", "limit": 25}).Info("activity feed")
	out := buf.String()
	assert.Contains(t, out, "company_id")
	assert.Contains(t, out, "c1")
}
