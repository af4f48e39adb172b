package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandPersistsAndReplaysHistory(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	logger := zerolog.Nop()

	resp, g, err := runCommand(statePath, "add_wall", map[string]interface{}{
		"start": []float64{0, 0}, "end": []float64{1000, 0},
	}, logger)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, g.EdgeCount())

	history, err := loadHistory(statePath)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "add_wall", history[0].Method)

	g2, err := loadGraph(statePath, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, g2.EdgeCount())
}

func TestRunCommandFailureDoesNotGrowHistory(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	logger := zerolog.Nop()

	resp, _, err := runCommand(statePath, "move_node", map[string]interface{}{
		"node_id": "does-not-exist", "to": []float64{0, 0},
	}, logger)
	require.NoError(t, err)
	assert.False(t, resp.Success)

	history, err := loadHistory(statePath)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLoadHistoryMissingFileIsEmpty(t *testing.T) {
	history, err := loadHistory(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, history)
}
