package persist

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config selects and parameterizes a Backend. It is typically loaded from a
// TOML file alongside a program's other settings, the same way the stores
// it's adapted from are wired up via flags.
type Config struct {
	// Kind selects the Backend implementation: "memory" or "leveldb".
	Kind string `toml:"kind"`
	// Dir is the on-disk directory used by the "leveldb" kind.
	Dir string `toml:"dir"`
}

// LoadConfig parses a Config from a TOML file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "persist: loading config %s", path)
	}
	return cfg, nil
}

// Open builds the Backend described by cfg.
func (cfg Config) Open() (Backend, error) {
	switch cfg.Kind {
	case "", "memory":
		return NewMemoryBackend(), nil
	case "leveldb":
		return OpenLevelDBBackend(cfg.Dir)
	default:
		return nil, errors.Errorf("persist: unknown backend kind %q", cfg.Kind)
	}
}
