package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleuth-query/sleuth/internal/config"
)

func TestListSourcesRun(t *testing.T) {
	uc := NewListSources(&config.RuntimeConfig{}, slog.Default())

	rows, err := uc.Run(context.Background(), `SELECT block.number FROM block`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "block", rows[0].Source)
	assert.Equal(t, "number", rows[0].Mapping)
	assert.Equal(t, "uint256", rows[0].Type)
}

func TestListSourcesRunBuiltinOnly(t *testing.T) {
	uc := NewListSources(&config.RuntimeConfig{}, slog.Default())

	rows, err := uc.Run(context.Background(), `SELECT 5`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "block", rows[0].Source)
}
