package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleuth-query/sleuth/internal/config"
)

func TestExplainQueryRun(t *testing.T) {
	uc := NewExplainQuery(&config.RuntimeConfig{}, slog.Default())

	rows, err := uc.Run(context.Background(), `SELECT block.number FROM block`)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].Name)
	assert.Equal(t, "number", *rows[0].Name)
	assert.Equal(t, "uint256", rows[0].Type)
	assert.Equal(t, "block_number", rows[0].Kind)
	assert.Empty(t, rows[0].Address)
}

func TestExplainQueryRunCall(t *testing.T) {
	uc := NewExplainQuery(&config.RuntimeConfig{}, slog.Default())

	program := `REGISTER CONTRACT comet AT 0xc3d688B66703497DAA19211EEdff47f25384cdc3
  WITH INTERFACE ["function totalSupply() returns (uint256)"];
SELECT comet.totalSupply FROM comet;`

	rows, err := uc.Run(context.Background(), program)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "call", rows[0].Kind)
	assert.Equal(t, "0xc3d688B66703497DAA19211EEdff47f25384cdc3", rows[0].Address)
	assert.Equal(t, "0x18160ddd", rows[0].Selector)
}

func TestExplainQueryDump(t *testing.T) {
	uc := NewExplainQuery(&config.RuntimeConfig{}, slog.Default())

	out, err := uc.Dump(context.Background(), `SELECT 5`)
	require.NoError(t, err)
	assert.Contains(t, out, "type: uint256")
	assert.Contains(t, out, "kind: number")
}

func TestExplainQueryRunError(t *testing.T) {
	uc := NewExplainQuery(&config.RuntimeConfig{}, slog.Default())

	_, err := uc.Run(context.Background(), `SELECT time.number FROM time`)
	require.Error(t, err)
	assert.Equal(t, `No such relation "time" referenced in FROM clause`, err.Error())
}
