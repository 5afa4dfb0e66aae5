package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/adapters/config"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.New(log)
}

func TestLoad_Success(t *testing.T) {
	content := `
contents:
  keyring:
    - https://packages.wolfi.dev/os/wolfi-signing.rsa.pub
    - https://packages.wolfi.dev/os/wolfi-signing.rsa.pub
  repositories:
    - https://dl-cdn.alpinelinux.org/alpine/v3.19/main
    - "@testing https://dl-cdn.alpinelinux.org/alpine/edge/testing"
  packages:
    - alpine-base
    - nginx-1.24.0
    - "  nodejs-20.10.0  "
    - git>=2.40
    - nginx-1.24.0
entrypoint:
  command: /usr/sbin/nginx
archs:
  - x86_64
  - aarch64
environment:
  PATH: /usr/sbin:/sbin:/usr/bin:/bin
accounts:
  run-as: 65532
`
	pf, err := newLoader(t).Load([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://dl-cdn.alpinelinux.org/alpine/v3.19/main",
		"https://dl-cdn.alpinelinux.org/alpine/edge/testing",
	}, pf.Contents.Repositories)
	assert.Equal(t, []string{"alpine-base", "nginx-1.24.0", "nodejs-20.10.0", "git>=2.40", "nginx-1.24.0"}, pf.Contents.Packages)
	assert.Equal(t, []string{"x86_64", "aarch64"}, pf.Archs)
}

func TestLoad_Empty(t *testing.T) {
	for _, content := range []string{"", "\n  \n"} {
		pf, err := newLoader(t).Load([]byte(content))
		require.NoError(t, err)
		require.NotNil(t, pf)
		assert.Empty(t, pf.Contents.Packages)
	}
}

func TestLoad_NoPackages(t *testing.T) {
	pf, err := newLoader(t).Load([]byte("contents:\n  repositories:\n    - https://example.com/main\n"))
	require.NoError(t, err)
	assert.Empty(t, pf.Contents.Packages)
	assert.Equal(t, []string{"https://example.com/main"}, pf.RegistryURLs(nil))
}

func TestLoad_Malformed(t *testing.T) {
	tests := map[string]string{
		"invalid yaml":       "invalid: yaml: content",
		"packages not list":  "contents:\n  packages: nginx\n",
		"package is mapping": "contents:\n  packages:\n    - name: nginx\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			pf, err := newLoader(t).Load([]byte(content))
			require.Error(t, err)
			assert.Nil(t, pf)
			assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
		})
	}
}

func TestLoad_NilLogger(t *testing.T) {
	pf, err := config.New(nil).Load([]byte("contents:\n  packages: [curl]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"curl"}, pf.Contents.Packages)
}
