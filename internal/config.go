package internal

import (
	"fmt"
	"hotel-admin/client"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	BaseURL           string        `env:"HOTEL_API_BASE_URL,required=true"`
	BypassHeaderName  string        `env:"BYPASS_HEADER_NAME,default=ngrok-skip-browser-warning"`
	BypassHeaderValue string        `env:"BYPASS_HEADER_VALUE,default=true"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT,default=15s"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	SessionDBPath     string        `env:"SESSION_DB_PATH,default=.hotel-admin"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	ResetPolicy       string        `env:"RESET_POLICY,default=on_success"`
	DebugHTTP         bool          `env:"DEBUG_HTTP,default=false"`
}

// LoadConfig reads an optional .env file then the environment.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}

func (c Config) Words() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func (c Config) ClientOptions() client.Options {
	return client.Options{
		BaseURL:           c.BaseURL,
		BypassHeaderName:  c.BypassHeaderName,
		BypassHeaderValue: c.BypassHeaderValue,
		Timeout:           c.RequestTimeout,
		DebugBodies:       c.DebugHTTP,
	}
}
