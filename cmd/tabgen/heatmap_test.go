package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeatmap(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(input, []byte(",c0,c1\nr0,1,2\nr1,3,NaN\n"), 0o644))

	output := filepath.Join(dir, "out.png")
	require.NoError(t, renderHeatmap(context.Background(), input, "test", output, false))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(content[:4]))
}

func TestRenderHeatmap_RejectsUnlabeledTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,2\n"), 0o644))

	err := renderHeatmap(context.Background(), input, "", filepath.Join(dir, "out.png"), false)
	require.Error(t, err)
}
