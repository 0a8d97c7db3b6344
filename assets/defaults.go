package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default settings.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultCommandsYAML contains the embedded default command table.
//
//go:embed defaults/commands.yaml
var DefaultCommandsYAML []byte
