package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/adapters/telemetry"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
)

var (
	_ ports.Telemetry = (*telemetry.NoOp)(nil)
	_ ports.Vertex    = (*telemetry.NoOpVertex)(nil)
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "images/apko.yaml")
	require.NotNil(t, v)
	assert.Equal(t, v, ports.VertexFromContext(ctx))

	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	v.Log(domain.LogLevelInfo, "ignored")
	v.Cached()
	v.Complete(nil)
	assert.NoError(t, tel.Close())
}
