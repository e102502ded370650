package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Engine: EngineConfig{
			ParallelLines: false,
		},
		Spawn: SpawnConfig{
			NextBaseProbability: t2048.DefaultNextBaseProbability,
		},
		UI: UIConfig{
			DefaultVariant: t2048.DefaultVariantID,
			ShowAxisLock:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
