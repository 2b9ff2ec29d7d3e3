// Package compiler is the single entry façade: it sequences parsing,
// registry construction, resolution, ABI synthesis and Yul generation
// into the one function a host embedding calls.
package compiler

import (
	"github.com/sleuth-query/sleuth/internal/codegen/abi"
	"github.com/sleuth-query/sleuth/internal/codegen/yul"
	"github.com/sleuth-query/sleuth/internal/domain"
	"github.com/sleuth-query/sleuth/internal/parser"
	"github.com/sleuth-query/sleuth/internal/registry"
	"github.com/sleuth-query/sleuth/internal/resolver"
)

// Compile runs the full pipeline on one Sleuth program and returns
// "<abi-tuple>;<yul-source>" on success. presets are folded into the
// source registry ahead of the program's own REGISTER statements (a
// user REGISTER of the same name overrides a preset); pass nil when
// there are none.
func Compile(program string, presets []domain.RegisterQuery) (string, error) {
	queries, err := parser.Parse(program)
	if err != nil {
		return "", err
	}

	registryQueries := make([]domain.Query, 0, len(presets)+len(queries))
	for _, p := range presets {
		registryQueries = append(registryQueries, p)
	}
	registryQueries = append(registryQueries, queries...)

	sources, err := registry.GetAllSources(registryQueries)
	if err != nil {
		return "", err
	}

	resolutions, err := resolver.Resolve(queries, sources)
	if err != nil {
		return "", err
	}

	abiStr := abi.Synthesize(resolutions)

	yulStr, err := yul.Generate(resolutions)
	if err != nil {
		return "", err
	}

	return abiStr + ";" + yulStr, nil
}

// Sources runs parsing and registry construction only, without
// resolving or generating code. It backs the `sleuth sources`
// introspection command.
func Sources(program string, presets []domain.RegisterQuery) ([]domain.Source, error) {
	queries, err := parser.Parse(program)
	if err != nil {
		return nil, err
	}

	registryQueries := make([]domain.Query, 0, len(presets)+len(queries))
	for _, p := range presets {
		registryQueries = append(registryQueries, p)
	}
	registryQueries = append(registryQueries, queries...)

	return registry.GetAllSources(registryQueries)
}

// Resolve runs parsing, registry construction and resolution only,
// stopping short of ABI synthesis and Yul generation. It backs the
// `sleuth compile --explain` introspection path.
func Resolve(program string, presets []domain.RegisterQuery) ([]domain.Resolution, error) {
	queries, err := parser.Parse(program)
	if err != nil {
		return nil, err
	}

	registryQueries := make([]domain.Query, 0, len(presets)+len(queries))
	for _, p := range presets {
		registryQueries = append(registryQueries, p)
	}
	registryQueries = append(registryQueries, queries...)

	sources, err := registry.GetAllSources(registryQueries)
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(queries, sources)
}
