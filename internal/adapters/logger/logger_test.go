package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/apkpin/internal/adapters/logger"
	"go.trai.ch/apkpin/internal/core/ports"
)

var _ ports.Logger = (*logger.Logger)(nil)

func newBufferedLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Info("extracted package file", "path", "images/apko.yaml", "deps", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "extracted package file")
	assert.Contains(t, out, "path=images/apko.yaml")
	assert.Contains(t, out, "deps=3")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "some warning")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "permission denied")
}

func TestLogger_DebugRequiresVerbose(t *testing.T) {
	lg, buf := newBufferedLogger()

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("shown", "key", "value")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputKeepsLevel(t *testing.T) {
	lg := logger.New()
	lg.SetVerbose(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Debug("after redirect")

	assert.Contains(t, buf.String(), "after redirect")
}
