package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sleuth-query/sleuth/internal/domain"
)

func TestDescribeErrorSuggestsCloseSourceName(t *testing.T) {
	err := &domain.MissingSourceError{Name: "cometa", FromSources: []string{"comet", "block"}}

	got := describeError(err)
	assert.Contains(t, got, `Cannot find source "cometa"`)
	assert.Contains(t, got, `did you mean "comet"?`)
}

func TestDescribeErrorSuggestsCloseVariableName(t *testing.T) {
	err := &domain.MissingVariableError{Variable: "numbr", SourceName: "block", KnownVariables: []string{"number"}}

	got := describeError(err)
	assert.Contains(t, got, `did you mean "number"?`)
}

func TestDescribeErrorPassesThroughUnrelatedErrors(t *testing.T) {
	err := &domain.UnknownRelationError{Name: "time"}

	assert.Equal(t, `No such relation "time" referenced in FROM clause`, describeError(err))
}
