// Package resolver walks parsed SELECT queries and binds each
// selection to a concrete DataSource, producing the ordered
// Resolution list consumed by the ABI synthesizer and Yul generator.
package resolver

import (
	"fmt"

	"github.com/sleuth-query/sleuth/internal/domain"
	"github.com/sleuth-query/sleuth/internal/registry"
)

// Resolve traverses every SelectQuery in queries in order (Register
// queries contribute only to the registry and are skipped here),
// producing one Resolution per projected selection item.
func Resolve(queries []domain.Query, allSources []domain.Source) ([]domain.Resolution, error) {
	var resolutions []domain.Resolution

	for _, q := range queries {
		sq, ok := q.(domain.SelectQuery)
		if !ok {
			continue
		}

		sources, err := registry.SourcesForQuery(q, allSources)
		if err != nil {
			return nil, err
		}

		for _, sel := range sq.Select {
			r, err := resolveSelection(sel, sources)
			if err != nil {
				return nil, err
			}
			resolutions = append(resolutions, r)
		}
	}

	return resolutions, nil
}

func resolveSelection(sel domain.Selection, sources []domain.Source) (domain.Resolution, error) {
	switch sel.Kind {
	case domain.SelVar:
		return resolveVar(sel, sources)
	case domain.SelNumber:
		return domain.Resolution{
			Abi:        domain.Elementary(domain.Uint(256)),
			DataSource: domain.DataSource{Kind: domain.DSNumber, Number: sel.Number},
		}, nil
	case domain.SelString:
		return domain.Resolution{
			Abi:        domain.Elementary(domain.StringType()),
			DataSource: domain.DataSource{Kind: domain.DSString, Str: sel.Str},
		}, nil
	case domain.SelAddress:
		return domain.Resolution{}, &domain.UnsupportedError{Msg: "address selections are not supported"}
	case domain.SelMulti:
		return domain.Resolution{}, &domain.UnsupportedError{Msg: "multi selections are not supported at the top level"}
	default:
		return domain.Resolution{}, &domain.UnsupportedError{Msg: "unrecognized selection kind"}
	}
}

func resolveVar(sel domain.Selection, sources []domain.Source) (domain.Resolution, error) {
	if sel.Var.Kind == domain.VarWildcard {
		return domain.Resolution{}, &domain.UnsupportedError{Msg: "wildcard selections are not supported"}
	}
	if len(sel.Params) > 0 {
		return domain.Resolution{}, &domain.UnsupportedError{
			Msg: fmt.Sprintf("call-style selections are not supported: %s(...)", sel.Var.Name),
		}
	}
	if sel.Source == nil {
		return domain.Resolution{}, &domain.UnsupportedError{
			Msg: fmt.Sprintf("unqualified variable selections are not supported: %s", sel.Var.Name),
		}
	}

	sourceName := *sel.Source
	src, found := registry.FindSource(sourceName, sources)
	if !found {
		return domain.Resolution{}, &domain.MissingSourceError{
			Name:        sourceName,
			FromSources: registry.SourceNames(sources),
		}
	}

	ds, found := registry.FindDataSource(sel.Var.Name, src)
	if !found {
		return domain.Resolution{}, &domain.MissingVariableError{
			Variable:       sel.Var.Name,
			SourceName:     sourceName,
			KnownVariables: registry.MappingKeys(src),
		}
	}

	abi, err := ds.ABI()
	if err != nil {
		return domain.Resolution{}, err
	}

	name := sel.Var.Name
	return domain.Resolution{Name: &name, Abi: abi, DataSource: ds}, nil
}
