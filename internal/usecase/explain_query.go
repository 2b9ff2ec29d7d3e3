package usecase

import (
	"context"
	"encoding/hex"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/sleuth-query/sleuth/internal/codegen/abi"
	"github.com/sleuth-query/sleuth/internal/compiler"
	"github.com/sleuth-query/sleuth/internal/config"
	"github.com/sleuth-query/sleuth/internal/domain"
)

// ExplainQuery is the use case backing `sleuth compile --explain`: it
// runs the pipeline through resolution only and renders the resolved
// Resolution list as YAML, without ABI synthesis or Yul generation.
type ExplainQuery struct {
	config *config.RuntimeConfig
	logger *slog.Logger
}

// NewExplainQuery creates a new ExplainQuery use case.
func NewExplainQuery(cfg *config.RuntimeConfig, logger *slog.Logger) *ExplainQuery {
	return &ExplainQuery{config: cfg, logger: logger}
}

// ExplainResolution is one YAML-rendered row of an --explain dump: a
// resolved column's name, ABI type, and the kind of data source that
// produces it.
type ExplainResolution struct {
	Name     *string `yaml:"name,omitempty"`
	Type     string  `yaml:"type"`
	Kind     string  `yaml:"kind"`
	Address  string  `yaml:"address,omitempty"`
	Selector string  `yaml:"selector,omitempty"`
}

// Run resolves program's SELECT queries against its registry and
// returns one ExplainResolution per projected column, in order.
func (uc *ExplainQuery) Run(ctx context.Context, program string) ([]ExplainResolution, error) {
	resolutions, err := compiler.Resolve(program, uc.config.Presets)
	if err != nil {
		uc.logger.DebugContext(ctx, "explain failed", "error", err)
		return nil, err
	}

	rows := make([]ExplainResolution, len(resolutions))
	for i, r := range resolutions {
		rows[i] = ExplainResolution{
			Name: r.Name,
			Type: abi.RenderType(r.Abi),
			Kind: r.DataSource.Kind.String(),
		}
		if r.DataSource.Kind == domain.DSCall {
			rows[i].Address = r.DataSource.Address.Hex()
			rows[i].Selector = "0x" + hex.EncodeToString(r.DataSource.Calldata)
		}
	}

	uc.logger.DebugContext(ctx, "explain finished", "resolutions", len(rows))
	return rows, nil
}

// Dump resolves program and renders the result as a YAML document.
func (uc *ExplainQuery) Dump(ctx context.Context, program string) (string, error) {
	rows, err := uc.Run(ctx, program)
	if err != nil {
		return "", err
	}

	out, err := yaml.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
