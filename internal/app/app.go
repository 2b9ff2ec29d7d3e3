// Package app assembles the compiler's use cases into one
// dependency-injected container, wired with Google Wire.
package app

import (
	"log/slog"

	"github.com/sleuth-query/sleuth/internal/config"
	"github.com/sleuth-query/sleuth/internal/usecase"
)

// App is the application container every CLI command runs against.
type App struct {
	Config *config.RuntimeConfig
	Logger *slog.Logger

	CompileQuery *usecase.CompileQuery
	ListSources  *usecase.ListSources
	ExplainQuery *usecase.ExplainQuery
}

// NewApp creates a new App from its already-constructed dependencies.
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	compileQuery *usecase.CompileQuery,
	listSources *usecase.ListSources,
	explainQuery *usecase.ExplainQuery,
) (*App, error) {
	return &App{
		Config:       cfg,
		Logger:       logger,
		CompileQuery: compileQuery,
		ListSources:  listSources,
		ExplainQuery: explainQuery,
	}, nil
}
