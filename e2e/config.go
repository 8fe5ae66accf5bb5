package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// PARTYLINE_ADDR is the gRPC address of a running call service; the suites skip when empty
	PartylineAddr string `envconfig:"PARTYLINE_ADDR"`
	PageURL       string `envconfig:"E2E_PAGE_URL" default:"https://example.com"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
