// Package registry builds the symbol table of known Sources: the
// built-in block intrinsics plus whatever REGISTER CONTRACT statements
// (and, ahead of them, configured presets) contribute.
package registry

import (
	"sort"

	"github.com/samber/lo"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// blockSource is the one built-in Source, always present.
func blockSource() domain.Source {
	return domain.Source{
		Name: "block",
		Mappings: map[string]domain.DataSource{
			"number": {Kind: domain.DSBlockNumber},
		},
	}
}

// GetAllSources folds every domain.RegisterQuery in queries into the
// registry, starting from the built-in sources. Register queries are
// applied in order; a later REGISTER of the same source name
// overwrites an earlier one, so project presets folded in ahead of
// user queries can be shadowed by a user's own REGISTER statement.
func GetAllSources(queries []domain.Query) ([]domain.Source, error) {
	bySource := map[string]domain.Source{}
	order := []string{}

	blk := blockSource()
	bySource[blk.Name] = blk
	order = append(order, blk.Name)

	for _, q := range queries {
		rq, ok := q.(domain.RegisterQuery)
		if !ok {
			continue
		}
		src, err := sourceFromRegister(rq)
		if err != nil {
			return nil, err
		}
		if _, exists := bySource[src.Name]; !exists {
			order = append(order, src.Name)
		}
		bySource[src.Name] = src
	}

	return lo.Map(order, func(name string, _ int) domain.Source {
		return bySource[name]
	}), nil
}

// FindSource looks up a Source by exact name.
func FindSource(name string, sources []domain.Source) (domain.Source, bool) {
	for _, s := range sources {
		if s.Name == name {
			return s, true
		}
	}
	return domain.Source{}, false
}

// FindDataSource looks up a mapping by exact key within one Source.
func FindDataSource(name string, source domain.Source) (domain.DataSource, bool) {
	ds, ok := source.Mappings[name]
	return ds, ok
}

// SourcesForQuery resolves a Select query's FROM list against the full
// registry, failing with UnknownRelationError on any unregistered name.
func SourcesForQuery(query domain.Query, allSources []domain.Source) ([]domain.Source, error) {
	sq, ok := query.(domain.SelectQuery)
	if !ok {
		return nil, nil
	}

	res := make([]domain.Source, 0, len(sq.Source))
	for _, name := range sq.Source {
		src, found := FindSource(name, allSources)
		if !found {
			return nil, &domain.UnknownRelationError{Name: name}
		}
		res = append(res, src)
	}
	return res, nil
}

// MappingKeys returns the sorted mapping keys of a Source, used to
// build the deterministic "Known variables" list in error messages.
func MappingKeys(source domain.Source) []string {
	keys := lo.Keys(source.Mappings)
	sort.Strings(keys)
	return keys
}

// SourceNames returns the names of a Source slice, used to build the
// deterministic "FROM sources" list in error messages.
func SourceNames(sources []domain.Source) []string {
	return lo.Map(sources, func(s domain.Source, _ int) string { return s.Name })
}
