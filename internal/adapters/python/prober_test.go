package python

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/glue-viz/gluedeps/internal/core/ports/mocks"
)

func testRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	registry, err := domain.NewRegistry([]domain.Category{{
		Name:     domain.NewName("required"),
		Required: true,
		Dependencies: []domain.Dependency{
			{Name: domain.NewName("numpy"), Module: domain.NewName("numpy"), Package: domain.NewName("numpy")},
			{Name: domain.NewName("pandas"), Module: domain.NewName("pandas"), Package: domain.NewName("pandas")},
		},
	}})
	require.NoError(t, err)
	return registry
}

// stubInterpreter creates a fake interpreter binary so lazy resolution
// succeeds without Python installed.
func stubInterpreter(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // test interpreter stub
	return path
}

func fakeProbeOutput(t *testing.T, runner *mocks.MockRunner, interpreter string) {
	t.Helper()
	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec ports.RunSpec) ([]byte, error) {
			assert.Len(t, spec.Argv, 3)
			assert.Equal(t, interpreter, spec.Argv[0])
			assert.Equal(t, "-c", spec.Argv[1])
			if strings.Contains(spec.Argv[2], `"numpy"`) {
				return []byte(`{"installed": true, "version": "2.1.0"}`), nil
			}
			return []byte(`{"installed": false, "detail": "No module named 'pandas'"}`), nil
		}).
		Times(2)
}

func TestProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	interpreter := stubInterpreter(t)
	fakeProbeOutput(t, runner, interpreter)

	prober := NewProber(interpreter, runner, logger, "")
	results, err := prober.Probe(context.Background(), testRegistry(t), false)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[domain.NewName("numpy")].Installed)
	assert.Equal(t, "2.1.0", results[domain.NewName("numpy")].Version)
	assert.False(t, results[domain.NewName("pandas")].Installed)
	assert.Contains(t, results[domain.NewName("pandas")].Detail, "No module named")
}

func TestProbe_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	registry := testRegistry(t)
	interpreter := stubInterpreter(t)

	// The second probe must be answered from the cache.
	fakeProbeOutput(t, runner, interpreter)

	prober := NewProber(interpreter, runner, logger, t.TempDir())

	first, err := prober.Probe(context.Background(), registry, false)
	require.NoError(t, err)
	second, err := prober.Probe(context.Background(), registry, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProbe_RefreshBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	registry := testRegistry(t)

	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		Return([]byte(`{"installed": true, "version": "1.0"}`), nil).
		Times(4)

	prober := NewProber(stubInterpreter(t), runner, logger, t.TempDir())

	_, err := prober.Probe(context.Background(), registry, false)
	require.NoError(t, err)
	_, err = prober.Probe(context.Background(), registry, true)
	require.NoError(t, err)
}

func TestProbe_InvalidateClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	registry := testRegistry(t)

	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		Return([]byte(`{"installed": true}`), nil).
		Times(4)

	prober := NewProber(stubInterpreter(t), runner, logger, t.TempDir())

	_, err := prober.Probe(context.Background(), registry, false)
	require.NoError(t, err)
	require.NoError(t, prober.Invalidate())
	_, err = prober.Probe(context.Background(), registry, false)
	require.NoError(t, err)
}

// Construction must not resolve the interpreter; only Probe and Interpreter
// may fail when none exists.
func TestProber_ResolvesLazily(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	missing := filepath.Join(t.TempDir(), "python3")

	prober := NewProber(missing, runner, logger, "")

	_, err := prober.Interpreter()
	assert.True(t, errors.Is(err, domain.ErrInterpreterNotFound))

	_, err = prober.Probe(context.Background(), testRegistry(t), false)
	assert.True(t, errors.Is(err, domain.ErrInterpreterNotFound))
}

func TestProbe_InterpreterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).
		MinTimes(1)

	prober := NewProber(stubInterpreter(t), runner, logger, "")
	_, err := prober.Probe(context.Background(), testRegistry(t), false)
	assert.Error(t, err)
}

func TestProbe_GarbageOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		Return([]byte("Traceback (most recent call last)"), nil).
		MinTimes(1)

	prober := NewProber(stubInterpreter(t), runner, logger, "")
	_, err := prober.Probe(context.Background(), testRegistry(t), false)
	assert.Error(t, err)
}
