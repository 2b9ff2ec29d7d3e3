package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleuth-query/sleuth/internal/domain"
)

func TestCompileLiteral(t *testing.T) {
	out, err := Compile(`SELECT 5`, nil)
	require.NoError(t, err)

	parts := strings.SplitN(out, ";", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "tuple(uint256)", parts[0])
	assert.True(t, strings.HasPrefix(parts[1], "\nobject \"Query\" {"))
}

func TestCompileBlockNumber(t *testing.T) {
	out, err := Compile(`SELECT block.number FROM block`, nil)
	require.NoError(t, err)

	parts := strings.SplitN(out, ";", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "tuple(uint256 number)", parts[0])
	assert.Contains(t, parts[1], "mstore(res, number())")
}

func TestCompileRegisteredContract(t *testing.T) {
	program := `REGISTER CONTRACT comet AT 0xc3d688B66703497DAA19211EEdff47f25384cdc3
  WITH INTERFACE ["function totalSupply() returns (uint256)"];
SELECT comet.totalSupply FROM comet;`

	out, err := Compile(program, nil)
	require.NoError(t, err)

	parts := strings.SplitN(out, ";", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "tuple(tuple(uint256) totalSupply)", parts[0])
	assert.Contains(t, parts[1], "pop(call(gas(), 0xc3d688b66703497daa19211eedff47f25384cdc3, 0, free, 4, free, 0))")
}

func TestCompileUnknownRelationSurfacesVerbatim(t *testing.T) {
	_, err := Compile(`SELECT time.number FROM time`, nil)
	require.Error(t, err)
	assert.Equal(t, `No such relation "time" referenced in FROM clause`, err.Error())
}

func TestCompileWithPreset(t *testing.T) {
	presets := []domain.RegisterQuery{
		{
			Source:    "comet",
			Address:   "0xc3d688B66703497DAA19211EEdff47f25384cdc3",
			Interface: []string{"function totalSupply() returns (uint256)"},
		},
	}

	out, err := Compile(`SELECT comet.totalSupply FROM comet`, presets)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tuple(tuple(uint256) totalSupply);"))
}

func TestSourcesIntrospection(t *testing.T) {
	sources, err := Sources(`SELECT 5`, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "block", sources[0].Name)
}
