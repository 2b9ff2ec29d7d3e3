package cli

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// describeError renders err's message, appending a "did you mean"
// suggestion when it is a MissingSourceError or MissingVariableError
// and a close match exists among the known names. The suggestion is
// cosmetic CLI output only — it never touches the sentinel error text
// itself, which stays exactly as spec'd.
func describeError(err error) string {
	var missingSource *domain.MissingSourceError
	if errors.As(err, &missingSource) {
		if s := suggest(missingSource.Name, missingSource.FromSources); s != "" {
			return fmt.Sprintf("%s (did you mean %q?)", err, s)
		}
	}

	var missingVar *domain.MissingVariableError
	if errors.As(err, &missingVar) {
		if s := suggest(missingVar.Variable, missingVar.KnownVariables); s != "" {
			return fmt.Sprintf("%s (did you mean %q?)", err, s)
		}
	}

	return err.Error()
}

// suggest returns the closest fuzzy match to name among candidates.
// When name is not a fuzzy match of any candidate (for example it has
// an extra character, "cometa" for "comet"), it falls back to the first
// candidate that is itself a fuzzy match of name, and returns "" when
// neither direction matches.
func suggest(name string, candidates []string) string {
	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		return matches[0].Str
	}
	for _, c := range candidates {
		if len(fuzzy.Find(c, []string{name})) > 0 {
			return c
		}
	}
	return ""
}
