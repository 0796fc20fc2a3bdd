// Package common holds the shared bootstrap used by every subcommand:
// configuration loading, logger construction, and the publisher
// registry.
package common

import (
	"fmt"

	"github.com/ysleecn1234/newspaper-project/internal/config"
	"github.com/ysleecn1234/newspaper-project/internal/logger"
	"github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Global flag values bound by the root command.
var (
	// CfgFile is the --config flag value.
	CfgFile string
	// Debug is the --debug flag value.
	Debug bool
)

// Deps are the dependencies every subcommand starts from.
type Deps struct {
	Config   *config.Config
	Logger   logger.Interface
	Registry *sources.Registry
}

// Bootstrap loads configuration, builds the logger, and loads the
// publisher registry (built-in defaults, optionally overridden by the
// configured sources file).
func Bootstrap() (*Deps, error) {
	cfg, err := config.Load(CfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if Debug {
		cfg.Logging.Level = logger.DebugLevel
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	registry, err := sources.Load(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}

	return &Deps{Config: cfg, Logger: log, Registry: registry}, nil
}
