//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sleuth-query/sleuth/internal/config"
	"github.com/sleuth-query/sleuth/internal/logging"
	"github.com/sleuth-query/sleuth/internal/usecase"
)

// InitApp creates a fully wired App instance from a configured Viper
// instance and the command invoking it.
func InitApp(v *viper.Viper, cmd *cobra.Command) (*App, error) {
	wire.Build(
		config.Provider,

		logging.LoggingSet,

		usecase.NewCompileQuery,
		usecase.NewListSources,
		usecase.NewExplainQuery,

		NewApp,
	)
	return nil, nil
}
