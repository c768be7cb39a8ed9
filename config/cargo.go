package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/primovera12/load-planner/core/model"
)

// LoadCargo reads a cargo manifest from a yaml or json file. The file holds
// a top-level `cargo` list of items. Unit validation is left to the engine,
// which skips and flags malformed entries instead of rejecting the batch.
func LoadCargo(path string) ([]model.CargoItem, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported cargo format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	var manifest struct {
		Cargo []model.CargoItem `json:"cargo"`
	}
	if err := k.UnmarshalWithConf("", &manifest, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if len(manifest.Cargo) == 0 {
		return nil, fmt.Errorf("no cargo items in %s", path)
	}
	// Items default to a single unit when quantity is omitted.
	for i := range manifest.Cargo {
		if manifest.Cargo[i].Quantity == 0 {
			manifest.Cargo[i].Quantity = 1
		}
	}
	return manifest.Cargo, nil
}
