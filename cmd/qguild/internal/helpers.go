package internal

import (
	"fmt"
	"os"

	"github.com/tinyland-inc/qguild/pkg/config"
	"github.com/tinyland-inc/qguild/pkg/message"
	"github.com/tinyland-inc/qguild/pkg/openapi"
)

var (
	version   = "dev"
	gitCommit string
)

// GetVersion returns the version string.
func GetVersion() string {
	return version
}

// FormatVersion returns the version string with optional git commit.
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// ResolveConfig loads configuration from the given path, falling back to
// the default location, and to environment-only when no file exists.
func ResolveConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	return config.Load(path)
}

// NewSender constructs a transport from the config and binds a sender to
// it.
func NewSender(cfg *config.Config) *message.Sender {
	opts := []openapi.Option{openapi.WithTimeout(cfg.Timeout())}
	if cfg.Sandbox {
		opts = append(opts, openapi.WithSandbox())
	}
	return message.NewSender(openapi.New(cfg.AppID, cfg.Token, opts...))
}
