package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/funnel/internal/config"
)

func DefaultConfigCommand() *cobra.Command {
	var defaultConfigFile string
	var defaultConfigCmd = &cobra.Command{
		Use:   "defaultconfig",
		Short: "Generate configuration file with defaults",
		Long:  `Generate funnel configuration file with defaults`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := DefaultConfig(defaultConfigFile); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", defaultConfigFile)
			return nil
		},
	}
	defaultConfigCmd.Flags().StringVarP(&defaultConfigFile, "output", "o", "config.json", "path to default config file to generate")
	return defaultConfigCmd
}

// DefaultConfig writes the default configuration to configFile, encoded
// according to its extension. It refuses to overwrite an existing file.
func DefaultConfig(configFile string) error {
	if _, err := os.Stat(configFile); err == nil {
		return errors.New("target file already exists")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	conf, _, err := config.GetConfig(nil, "")
	if err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	ext := filepath.Ext(configFile)
	if len(ext) > 1 {
		ext = ext[1:]
	}

	supportedExtensions := []string{"json", "toml", "yaml", "yml"}

	var b []byte
	switch ext {
	case "json":
		b, err = json.MarshalIndent(conf, "", "  ")
	case "toml":
		b, err = toml.Marshal(conf)
	case "yaml", "yml":
		b, err = yaml.Marshal(conf)
	default:
		err = errors.New("output config file must have one of supported extensions: " + strings.Join(supportedExtensions, ", "))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, b, 0644)
}
