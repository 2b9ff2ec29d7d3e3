package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sleuth-query/sleuth/internal/domain"
)

// presetFile mirrors the [[presets]] table of sleuth.toml.
type presetFile struct {
	Presets []presetEntry `toml:"presets"`
}

type presetEntry struct {
	Name      string   `toml:"name"`
	Address   string   `toml:"address"`
	Interface []string `toml:"interface"`
}

// loadPresets parses the [[presets]] table out of sleuth.toml directly
// with BurntSushi/toml. Returns an empty slice, not an error, when
// sleuth.toml does not exist: presets are optional.
func loadPresets(projectRoot string) ([]presetEntry, error) {
	path := filepath.Join(projectRoot, "sleuth.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var pf presetFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse sleuth.toml: %w", err)
	}

	return pf.Presets, nil
}

func (p presetEntry) toRegisterQuery() domain.RegisterQuery {
	return domain.RegisterQuery{
		Source:    p.Name,
		Address:   p.Address,
		Interface: p.Interface,
	}
}

func presetsToRegisterQueries(entries []presetEntry) []domain.RegisterQuery {
	queries := make([]domain.RegisterQuery, 0, len(entries))
	for _, e := range entries {
		queries = append(queries, e.toRegisterQuery())
	}
	return queries
}
