package gosha

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerOptionAcceptsSugaredZap(t *testing.T) {
	logger := zap.NewNop().Sugar()

	h, err := NewHasher(SHA256, WithVerbosity(3), WithLogger(logger))
	require.NoError(t, err)

	h.Update([]byte("diagnostic path"))
	out, err := h.Digest()
	require.NoError(t, err)
	require.Len(t, out, 64)
}

func TestNoopLoggerIsDefault(t *testing.T) {
	h, err := NewHasher(SHA1)
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, h.log)
}
