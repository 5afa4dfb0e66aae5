package manager_test

import (
	"testing"

	"go.trai.ch/apkpin/internal/adapters/config"
	"go.trai.ch/apkpin/internal/adapters/fs"
	"go.trai.ch/apkpin/internal/adapters/telemetry"
	"go.trai.ch/apkpin/internal/core/ports/mocks"
	"go.trai.ch/apkpin/internal/engine/manager"
	"go.uber.org/mock/gomock"
)

const sampleLock = `{
  "schema_version": 1,
  "archs": {
    "x86_64": {
      "packages": [
        {"name": "nginx", "version": "1.24.0-r1", "origin": "nginx", "arch": "x86_64"},
        {"name": "git", "version": "2.39.0-r0", "origin": "git", "arch": "x86_64"},
        {"name": "zlib", "version": "1.3.1-r0", "origin": "zlib", "arch": "x86_64"}
      ]
    }
  }
}`

type fixture struct {
	tree     *mocks.MockWorkTree
	registry *mocks.MockReleaseLookup
	locker   *mocks.MockLockGenerator
	logger   *mocks.MockLogger
	mgr      *manager.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		tree:     mocks.NewMockWorkTree(ctrl),
		registry: mocks.NewMockReleaseLookup(ctrl),
		locker:   mocks.NewMockLockGenerator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	f.mgr = manager.New(
		config.New(nil),
		f.tree,
		f.registry,
		f.locker,
		fs.NewHasher(),
		telemetry.NewNoOp(),
		f.logger,
	)
	return f
}
