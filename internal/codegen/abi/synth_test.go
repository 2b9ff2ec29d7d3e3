package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sleuth-query/sleuth/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSynthesizeMixedFields(t *testing.T) {
	resolutions := []domain.Resolution{
		{Name: strPtr("name"), Abi: domain.Elementary(domain.StringType())},
		{Name: strPtr("age"), Abi: domain.Elementary(domain.Uint(256))},
		{Abi: domain.Elementary(domain.Uint(256))},
	}

	assert.Equal(t, "tuple(string name,uint256 age,uint256)", Synthesize(resolutions))
}

func TestSynthesizeNestedTuple(t *testing.T) {
	resolutions := []domain.Resolution{
		{
			Name: strPtr("totalSupply"),
			Abi: domain.Elementary(domain.TupleOf(
				domain.TupleField{Type: domain.Uint(256)},
			)),
		},
	}

	assert.Equal(t, "tuple(tuple(uint256) totalSupply)", Synthesize(resolutions))
}

func TestSynthesizeArrayAndFixedArray(t *testing.T) {
	resolutions := []domain.Resolution{
		{Name: strPtr("list"), Abi: domain.Elementary(domain.Array(domain.Address()))},
		{Name: strPtr("fixed"), Abi: domain.Elementary(domain.FixedArray(domain.Bool(), 3))},
	}

	assert.Equal(t, "tuple(address[] list,bool[3] fixed)", Synthesize(resolutions))
}

func TestSynthesizeEmpty(t *testing.T) {
	assert.Equal(t, "tuple()", Synthesize(nil))
}
