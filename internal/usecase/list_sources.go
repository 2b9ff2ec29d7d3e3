package usecase

import (
	"context"
	"log/slog"

	"github.com/sleuth-query/sleuth/internal/codegen/abi"
	"github.com/sleuth-query/sleuth/internal/compiler"
	"github.com/sleuth-query/sleuth/internal/config"
	"github.com/sleuth-query/sleuth/internal/domain"
	"github.com/sleuth-query/sleuth/internal/registry"
)

// ListSources is the use case backing `sleuth sources`: it parses a
// program and builds its source registry without resolving or
// generating code.
type ListSources struct {
	config *config.RuntimeConfig
	logger *slog.Logger
}

// NewListSources creates a new ListSources use case.
func NewListSources(cfg *config.RuntimeConfig, logger *slog.Logger) *ListSources {
	return &ListSources{config: cfg, logger: logger}
}

// SourceRow is one renderable row of `sleuth sources`' output: a
// source name paired with each of its mapping names and ABI types.
type SourceRow struct {
	Source  string
	Mapping string
	Type    string
}

// Run parses program and flattens its registry into renderable rows.
func (uc *ListSources) Run(ctx context.Context, program string) ([]SourceRow, error) {
	sources, err := compiler.Sources(program, uc.config.Presets)
	if err != nil {
		uc.logger.DebugContext(ctx, "source listing failed", "error", err)
		return nil, err
	}

	rows := make([]SourceRow, 0, len(sources))
	for _, s := range sources {
		for _, name := range registry.MappingKeys(s) {
			rows = append(rows, SourceRow{
				Source:  s.Name,
				Mapping: name,
				Type:    renderDataSourceType(s.Mappings[name]),
			})
		}
	}

	return rows, nil
}

func renderDataSourceType(ds domain.DataSource) string {
	ft, err := ds.ABI()
	if err != nil {
		return "unsupported"
	}
	return abi.RenderType(ft)
}
