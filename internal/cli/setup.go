// Package cli implements the funnel commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"honnef.co/go/funnel/internal/config"
	"honnef.co/go/funnel/internal/dataset"
	"honnef.co/go/funnel/internal/logging"
	"honnef.co/go/funnel/view"
)

// setup loads the environment, the configuration and sets up logging. The
// returned function releases the log file.
func setup(cmd *cobra.Command) (config.Config, func(), error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return config.Config{}, nil, fmt.Errorf("error loading .env file: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, meta, err := config.GetConfig(cmd, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	if meta.FileNotFound {
		log.Warn().Str("file", configFile).Msg("config file not found, continuing using environment and flags")
	}
	if err := cfg.Validate(); err != nil {
		closeLog()
		return config.Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, closeLog, nil
}

func datasetOptions(cfg config.Config) dataset.Options {
	return dataset.Options{JSONPath: cfg.Dataset.JSONPath, Sheet: cfg.Dataset.Sheet}
}

// graphOptions returns the configured graph options, logging through the
// global logger.
func graphOptions(cfg config.Config) view.Options {
	opts := cfg.GraphOptions()
	logger := log.Logger
	opts.Logger = &logger
	return opts
}
