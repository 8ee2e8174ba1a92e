package e2e

import (
	"context"
	"fmt"
	"hotel-admin/client"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseHTTPSuite runs scenarios against a live backend given by HOTEL_API_BASE_URL.
type BaseHTTPSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips the whole suite
// when no backend is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BaseURL == "" {
		s.T().Skip("HOTEL_API_BASE_URL is not set")
	}
}

// WithClient prints a step header and hands a fresh client to fn.
func (s *BaseHTTPSuite) WithClient(name string, fn func(ctx context.Context, c *client.Client)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	level := slog.LevelInfo
	if s.Config.DebugJSON {
		level = slog.LevelDebug
	}
	c, err := client.NewClient(logs.GetLoggerFromLevel(level), client.Options{
		BaseURL:     s.Config.BaseURL,
		DebugBodies: s.Config.DebugJSON,
	})
	s.Require().NoError(err, "Failed to build a client for "+s.Config.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, c)
}
