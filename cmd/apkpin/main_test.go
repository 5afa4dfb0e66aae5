package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		files        map[string]string
		args         []string
		expectedExit int
	}{
		{
			name:         "compare valid versions",
			args:         []string{"apkpin", "compare", "2.39.0~beta", "2.39.0"},
			expectedExit: 0,
		},
		{
			name:         "compare invalid version",
			args:         []string{"apkpin", "compare", "latest", "2.39.0"},
			expectedExit: 1,
		},
		{
			name: "extract package files",
			files: map[string]string{
				"images/nginx/apko.yaml": "contents:\n  packages:\n    - nginx-1.24.0\n    - curl\n",
				"images/empty/apko.yml":  "",
			},
			args:         []string{"apkpin", "extract", "--format", "yaml"},
			expectedExit: 0,
		},
		{
			name:         "lock rejects other files",
			files:        map[string]string{"Dockerfile": "FROM scratch\n"},
			args:         []string{"apkpin", "lock", "Dockerfile"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"apkpin", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			for name, content := range tt.files {
				path := filepath.Join(tmpDir, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			}

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
