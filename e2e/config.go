package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL string `envconfig:"HOTEL_API_BASE_URL"`
	// Admin credentials used by the authenticated scenarios, skipped when empty
	AdminEmail    string `envconfig:"E2E_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"E2E_ADMIN_PASSWORD"`
	// E2E_DEBUG_JSON dumps request and response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized step headers
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
