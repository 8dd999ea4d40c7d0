package telemetry

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glue-viz/gluedeps/internal/core/ports"
)

func TestNoop(t *testing.T) {
	rec := NewNoop()

	ctx, vertex := rec.Record(context.Background(), "install numpy")

	_, err := io.WriteString(vertex.Stdout(), "ignored")
	require.NoError(t, err)
	_, err = io.WriteString(vertex.Stderr(), "ignored")
	require.NoError(t, err)
	vertex.Complete(nil)
	vertex.Cached()

	_, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)
	assert.NoError(t, rec.Close())
}
