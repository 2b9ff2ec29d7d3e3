package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleuth-query/sleuth/internal/domain"
	"github.com/sleuth-query/sleuth/internal/parser"
	"github.com/sleuth-query/sleuth/internal/registry"
)

func resolveProgram(t *testing.T, program string) ([]domain.Resolution, error) {
	t.Helper()
	queries, err := parser.Parse(program)
	require.NoError(t, err)

	sources, err := registry.GetAllSources(queries)
	require.NoError(t, err)

	return Resolve(queries, sources)
}

func TestResolveBlockNumber(t *testing.T) {
	resolutions, err := resolveProgram(t, `SELECT block.number FROM block`)
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	r := resolutions[0]
	require.NotNil(t, r.Name)
	assert.Equal(t, "number", *r.Name)
	assert.Equal(t, domain.KindUint, r.Abi.Elementary.Kind)
	assert.Equal(t, 256, r.Abi.Elementary.Bits)
	assert.Equal(t, domain.DSBlockNumber, r.DataSource.Kind)
}

func TestResolveMissingSource(t *testing.T) {
	_, err := resolveProgram(t, `SELECT time.number FROM block`)
	require.Error(t, err)
	assert.Equal(t, `Cannot find source "time" in sources from query. FROM sources: block`, err.Error())
	require.ErrorIs(t, err, domain.ErrMissingSource)
}

func TestResolveMissingVariable(t *testing.T) {
	_, err := resolveProgram(t, `SELECT block.age FROM block`)
	require.Error(t, err)
	assert.Equal(t, `Cannot find variable with name "age" in source "block". Known variables: number`, err.Error())
	require.ErrorIs(t, err, domain.ErrMissingVariable)
}

func TestResolveLiterals(t *testing.T) {
	resolutions, err := resolveProgram(t, `SELECT 5, "cat"`)
	require.NoError(t, err)
	require.Len(t, resolutions, 2)

	assert.Nil(t, resolutions[0].Name)
	assert.Equal(t, domain.KindUint, resolutions[0].Abi.Elementary.Kind)
	assert.Equal(t, domain.DSNumber, resolutions[0].DataSource.Kind)
	assert.Equal(t, uint64(5), resolutions[0].DataSource.Number)

	assert.Nil(t, resolutions[1].Name)
	assert.Equal(t, domain.KindString, resolutions[1].Abi.Elementary.Kind)
	assert.Equal(t, domain.DSString, resolutions[1].DataSource.Kind)
	assert.Equal(t, "cat", resolutions[1].DataSource.Str)
}

func TestResolveUnqualifiedVarUnsupported(t *testing.T) {
	_, err := resolveProgram(t, `SELECT number FROM block`)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestResolveWildcardUnsupported(t *testing.T) {
	_, err := resolveProgram(t, `SELECT block.* FROM block`)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestResolveCallStyleUnsupported(t *testing.T) {
	_, err := resolveProgram(t, `SELECT incr(user) WHERE user IN (1,2,3)`)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnsupported)
	assert.Equal(t, "call-style selections are not supported: incr(...)", err.Error())
}

func TestResolveRegisteredCall(t *testing.T) {
	program := `REGISTER CONTRACT comet AT 0xc3d688B66703497DAA19211EEdff47f25384cdc3 WITH INTERFACE ["function totalSupply() returns (uint256)"];
SELECT comet.totalSupply FROM comet;`

	resolutions, err := resolveProgram(t, program)
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	r := resolutions[0]
	require.NotNil(t, r.Name)
	assert.Equal(t, "totalSupply", *r.Name)
	assert.Equal(t, domain.KindTuple, r.Abi.Elementary.Kind)
	require.Len(t, r.Abi.Elementary.Tuple, 1)
	assert.Equal(t, domain.KindUint, r.Abi.Elementary.Tuple[0].Type.Kind)
	assert.Equal(t, domain.DSCall, r.DataSource.Kind)
}
