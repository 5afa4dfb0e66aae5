package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("x86_64")
	b := domain.NewInternedString("x86_64")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "x86_64", a.String())
	assert.False(t, a.IsZero())

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestInternedString_JSON(t *testing.T) {
	data, err := json.Marshal(domain.NewInternedString("nginx"))
	require.NoError(t, err)
	assert.JSONEq(t, `"nginx"`, string(data))

	var got domain.InternedString
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "nginx", got.String())

	var zero domain.InternedString
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.JSONEq(t, `""`, string(data))
}

func TestInternedString_YAML(t *testing.T) {
	var pkg domain.LockedPackage
	require.NoError(t, yaml.Unmarshal([]byte("name: nginx\norigin: nginx-src\narch: aarch64\n"), &pkg))

	assert.Equal(t, "nginx-src", pkg.Origin.String())
	assert.Equal(t, domain.NewInternedString("aarch64").Value(), pkg.Arch.Value())
}
