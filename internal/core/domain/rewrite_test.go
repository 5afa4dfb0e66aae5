package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRewriteDeclaration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		dep     string
		current string
		newVal  string
		want    string
	}{
		{
			name:    "simple list item",
			content: "- git=2.39.0-r0\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "- git=2.40.0-r0\n",
		},
		{
			name: "nested with indentation and neighbours",
			content: "contents:\n  packages:\n    - busybox=1.36.1-r0\n    - git=2.39.0-r0\n    - gitea=1.21.0-r0\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "contents:\n  packages:\n    - busybox=1.36.1-r0\n    - git=2.40.0-r0\n    - gitea=1.21.0-r0\n",
		},
		{
			name:    "quoted with trailing comment",
			content: "packages:\n  - \"git=2.39.0-r0\" # pinned\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "packages:\n  - \"git=2.40.0-r0\" # pinned\n",
		},
		{
			name:    "crlf line endings",
			content: "packages:\r\n  - git=2.39.0-r0\r\n  - curl\r\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "packages:\r\n  - git=2.40.0-r0\r\n  - curl\r\n",
		},
		{
			name:    "declared version differs from current",
			content: "- git=2.38.0-r0\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "- git=2.40.0-r0\n",
		},
		{
			name:    "only first declaration is rewritten",
			content: "- git=2.39.0-r0\n- git=2.39.0-r0\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "- git=2.40.0-r0\n- git=2.39.0-r0\n",
		},
		{
			name:    "regex metacharacters in name",
			content: "- libstdc++=13.2.1-r0\n- libstdcxx=13.2.1-r0\n",
			dep:     "libstdc++", current: "13.2.1-r0", newVal: "13.2.1-r1",
			want: "- libstdc++=13.2.1-r1\n- libstdcxx=13.2.1-r0\n",
		},
		{
			name:    "already at new value",
			content: "- git=2.40.0-r0\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "- git=2.40.0-r0\n",
		},
		{
			name:    "prefix of new value is not treated as done",
			content: "- git=2.40.0-r0\n",
			dep:     "git", current: "2.40.0-r0", newVal: "2.40.0",
			want: "- git=2.40.0\n",
		},
		{
			name:    "substring fallback for flow sequence",
			content: "packages: [curl, git=2.39.0-r0]\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "packages: [curl, git=2.40.0-r0]\n",
		},
		{
			name:    "fallback already at new value",
			content: "packages: [git=2.40.0-r0]\n",
			dep:     "git", current: "2.39.0-r0", newVal: "2.40.0-r0",
			want: "packages: [git=2.40.0-r0]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.RewriteDeclaration(tt.content, tt.dep, tt.current, tt.newVal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := domain.RewriteDeclaration(got, tt.dep, tt.current, tt.newVal)
			require.NoError(t, err)
			assert.Equal(t, got, again, "rewrite is idempotent")
		})
	}
}

func TestRewriteDeclaration_NotFound(t *testing.T) {
	_, err := domain.RewriteDeclaration("- curl=8.5.0-r0\n", "git", "2.39.0-r0", "2.40.0-r0")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRewriteTargetNotFound.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "git", meta["dep_name"])
	assert.Equal(t, "2.39.0-r0", meta["current_value"])
	assert.Equal(t, "2.40.0-r0", meta["new_value"])
}

func TestRewriteDeclaration_IncompleteUpgrade(t *testing.T) {
	cases := [][3]string{
		{"", "1.0.0", "1.1.0"},
		{"git", "", "1.1.0"},
		{"git", "1.0.0", ""},
	}
	for _, c := range cases {
		_, err := domain.RewriteDeclaration("- git=1.0.0\n", c[0], c[1], c[2])
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrIncompleteUpgrade.Error())
	}
}
