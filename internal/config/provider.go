package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SetupViper creates and configures a viper instance for one CLI
// invocation: sleuth.toml in projectRoot, SLEUTH_-prefixed env vars,
// and the command's own flags, in increasing priority. It loads a
// .env file (if present) before binding environment variables, for
// CLI ergonomics.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()
	nameFormatter := strings.NewReplacer("-", "_", ".", "_")

	v.SetConfigName("sleuth")
	v.SetConfigType("toml")
	v.AddConfigPath(projectRoot)

	v.SetEnvPrefix("SLEUTH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(nameFormatter)

	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			name := nameFormatter.Replace(f.Name)
			_ = v.BindPFlag(name, f)
		})
	}

	return v
}

// Provider builds a RuntimeConfig from a configured Viper instance,
// for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")

	presets, err := loadPresets(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		LogLevel:       v.GetString("log_level"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Presets:        presetsToRegisterQueries(presets),
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find
// sleuth.toml, falling back to the current directory when none is
// found: sleuth.toml is optional, presets-only configuration.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	start := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, "sleuth.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}
