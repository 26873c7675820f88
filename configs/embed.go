package configs

import _ "embed"

// Default property files, used when no override path is set in the environment.
var (
	//go:embed application.yml
	ApplicationYAML []byte

	//go:embed messages.yml
	MessagesYAML []byte

	//go:embed regions.yml
	RegionsYAML []byte
)
