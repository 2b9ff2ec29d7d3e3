package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sleuth-query/sleuth/internal/compiler"
	"github.com/sleuth-query/sleuth/internal/config"
)

// CompileResult is the outcome of running CompileQuery.
type CompileResult struct {
	ABI string
	Yul string
}

// CompileQuery is the use case backing `sleuth compile`: it runs the
// full parse/registry/resolve/codegen pipeline over one program,
// folding in the project's configured presets.
type CompileQuery struct {
	config *config.RuntimeConfig
	logger *slog.Logger
}

// NewCompileQuery creates a new CompileQuery use case.
func NewCompileQuery(cfg *config.RuntimeConfig, logger *slog.Logger) *CompileQuery {
	return &CompileQuery{config: cfg, logger: logger}
}

// Run compiles program and splits the "<abi>;<yul>" result into its
// two halves.
func (uc *CompileQuery) Run(ctx context.Context, program string) (*CompileResult, error) {
	start := time.Now()

	out, err := compiler.Compile(program, uc.config.Presets)
	if err != nil {
		uc.logger.DebugContext(ctx, "compilation failed", "error", err)
		return nil, err
	}

	abiStr, yulStr, _ := splitOutput(out)
	uc.logger.DebugContext(ctx, "compilation finished",
		"sources", len(uc.config.Presets),
		"elapsed", time.Since(start))

	return &CompileResult{ABI: abiStr, Yul: yulStr}, nil
}

func splitOutput(out string) (abiStr, yulStr string, ok bool) {
	for i := 0; i < len(out); i++ {
		if out[i] == ';' {
			return out[:i], out[i+1:], true
		}
	}
	return out, "", false
}
