package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tractor.log")
	require.NoError(t, Init("debug", path))

	L().Info("对局开始", zap.Int("seat", 0))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "对局开始")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud", ""))
}
