package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_RELAY_ADDR targets a running relay; an in-process relay is started when empty
	RelayAddr string `envconfig:"E2E_RELAY_ADDR"`
	// E2E_DEBUG_LINES logs every line sent and received
	DebugLines bool `envconfig:"E2E_DEBUG_LINES" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
