package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-champion/pkg/champion"
)

func TestRunReturnsErrors(t *testing.T) {
	require.Error(t, run([]string{"-depth", "2"}))

	logPath := filepath.Join(t.TempDir(), "play.log")
	err := run([]string{"-lkbk", "9", "-log", logPath})
	require.ErrorIs(t, err, champion.ErrInvalidConfig)

	// The log file was opened before the engine failed, and closed again
	_, statErr := os.Stat(logPath)
	require.NoError(t, statErr)
	require.NoError(t, os.Remove(logPath))
}
