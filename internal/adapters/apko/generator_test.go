package apko_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/adapters/apko"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/apkpin/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var _ ports.LockGenerator = (*apko.Generator)(nil)

// fakeTool writes an executable shell script standing in for apko.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "apko")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700)) //nolint:gosec // test script must be executable
	return path
}

func TestGenerator_Lock(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("running lock tool", gomock.Any()).Times(1)
	log.EXPECT().Debug("locking apko.yaml").Times(1)

	tool := fakeTool(t, `echo "locking $2"
printf '{"schema_version": 1}' > apko.lock.json
`)
	dir := t.TempDir()

	err := apko.NewGeneratorWithBinary(tool, log).Lock(context.Background(), dir, "apko.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "apko.lock.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema_version": 1}`, string(data))
}

func TestGenerator_Lock_BuffersPartialLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("running lock tool", gomock.Any())
	log.EXPECT().Debug("part1part2").Times(1)
	log.EXPECT().Debug("tail").Times(1)

	tool := fakeTool(t, `printf part1; sleep 0.1; printf 'part2\n'; printf tail`)

	err := apko.NewGeneratorWithBinary(tool, log).Lock(context.Background(), t.TempDir(), "apko.yaml")
	require.NoError(t, err)
}

func TestGenerator_Lock_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	tool := fakeTool(t, `echo "failed to resolve package: nginx=9.9.9" >&2
exit 3
`)

	err := apko.NewGeneratorWithBinary(tool, log).Lock(context.Background(), t.TempDir(), "apko.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockGenerationFailed.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "failed to resolve package: nginx=9.9.9", meta["stderr"])
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "apko.yaml", meta["config"])
}

func TestGenerator_Lock_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	missing := filepath.Join(t.TempDir(), "no-such-apko")
	err := apko.NewGeneratorWithBinary(missing, log).Lock(context.Background(), t.TempDir(), "apko.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockToolNotFound.Error())
}

func TestGenerator_Lock_StreamsToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	var stdout, stderr bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&stdout)
	vertex.EXPECT().Stderr().Return(&stderr)

	tool := fakeTool(t, `echo out; echo err >&2`)
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	require.NoError(t, apko.NewGeneratorWithBinary(tool, log).Lock(ctx, t.TempDir(), "apko.yaml"))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}
