// Package apko implements the LockGenerator port by running `apko lock`.
package apko

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator implements ports.LockGenerator using the apko binary.
type Generator struct {
	binary string
	logger ports.Logger
}

// NewGenerator creates a Generator that runs the apko binary found on PATH.
func NewGenerator(logger ports.Logger) *Generator {
	return NewGeneratorWithBinary(domain.LockToolName, logger)
}

// NewGeneratorWithBinary creates a Generator running binary instead of apko.
func NewGeneratorWithBinary(binary string, logger ports.Logger) *Generator {
	return &Generator{binary: binary, logger: logger}
}

// Lock runs `apko lock <configFile>` with dir as working directory.
// Output is streamed to the debug log and to the vertex carried by ctx, if any.
func (g *Generator) Lock(ctx context.Context, dir, configFile string) error {
	executable, err := exec.LookPath(g.binary)
	if err != nil {
		lookErr := zerr.Wrap(err, domain.ErrLockToolNotFound.Error())
		lookErr = zerr.With(lookErr, "binary", g.binary)
		return zerr.With(lookErr, "stderr", err.Error())
	}

	cmd := exec.CommandContext(ctx, executable, "lock", configFile) //nolint:gosec // configFile comes from discovery
	cmd.Dir = dir

	var stderr bytes.Buffer
	stdoutLog := &logWriter{logger: g.logger}
	stderrLog := &logWriter{logger: g.logger}
	stdouts := []io.Writer{stdoutLog}
	stderrs := []io.Writer{&stderr, stderrLog}
	if v := ports.VertexFromContext(ctx); v != nil {
		stdouts = append(stdouts, v.Stdout())
		stderrs = append(stderrs, v.Stderr())
	}
	cmd.Stdout = io.MultiWriter(stdouts...)
	cmd.Stderr = io.MultiWriter(stderrs...)

	g.logger.Debug("running lock tool", "binary", executable, "config", configFile, "dir", dir)
	runErr := cmd.Run()
	stdoutLog.Flush()
	stderrLog.Flush()

	if runErr != nil {
		exitCode := -1
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		lockErr := zerr.Wrap(runErr, domain.ErrLockGenerationFailed.Error())
		lockErr = zerr.With(lockErr, "config", configFile)
		lockErr = zerr.With(lockErr, "exit_code", exitCode)
		return zerr.With(lockErr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// logWriter forwards complete lines to the debug log, buffering partial writes.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line: keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if line != "" {
		w.logger.Debug(line)
	}
}
