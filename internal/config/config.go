// Package config contains the funnel Config and the code to load it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// with dots replaced by underscores: FUNNEL_LOG_LEVEL sets log.level.
const EnvPrefix = "FUNNEL"

type Config struct {
	// Width and Height are the dimensions of rendered funnels.
	Width  float64 `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height float64 `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	// Direction is horizontal or vertical.
	Direction string `mapstructure:"direction" json:"direction" toml:"direction" yaml:"direction"`
	// GradientDirection is horizontal or vertical.
	GradientDirection string `mapstructure:"gradient_direction" json:"gradient_direction" toml:"gradient_direction" yaml:"gradient_direction"`
	DisplayPercent    bool   `mapstructure:"display_percent" json:"display_percent" toml:"display_percent" yaml:"display_percent"`
	// SubLabelValue is percent or raw.
	SubLabelValue string `mapstructure:"sub_label_value" json:"sub_label_value" toml:"sub_label_value" yaml:"sub_label_value"`

	Log     Log     `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
	HTTP    HTTP    `mapstructure:"http" json:"http" toml:"http" yaml:"http"`
	Watch   Watch   `mapstructure:"watch" json:"watch" toml:"watch" yaml:"watch"`
	Dataset Dataset `mapstructure:"dataset" json:"dataset" toml:"dataset" yaml:"dataset"`
}

type Log struct {
	// Level is one of none, trace, debug, info, warn, error or fatal.
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	// File is an optional path to write logs to instead of stderr.
	File string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

type HTTP struct {
	Address string `mapstructure:"address" json:"address" toml:"address" yaml:"address"`
	Port    int    `mapstructure:"port" json:"port" toml:"port" yaml:"port"`
}

type Watch struct {
	// Debounce is how long to wait after the last change of a dataset file
	// before rendering it again.
	Debounce time.Duration `mapstructure:"debounce" json:"debounce" toml:"debounce" yaml:"debounce"`
}

type Dataset struct {
	// JSONPath selects the funnel object inside a larger JSON document.
	JSONPath string `mapstructure:"json_path" json:"json_path" toml:"json_path" yaml:"json_path"`
	// Sheet selects the spreadsheet of an xlsx dataset. The first sheet is
	// used when empty.
	Sheet string `mapstructure:"sheet" json:"sheet" toml:"sheet" yaml:"sheet"`
}

// Meta describes how a Config was loaded.
type Meta struct {
	// FileNotFound is set when a config file was given but does not exist.
	FileNotFound bool
}

// Default returns the configuration used when no other source sets a key.
func Default() Config {
	return Config{
		Width:             600,
		Height:            300,
		Direction:         "horizontal",
		GradientDirection: "horizontal",
		SubLabelValue:     "percent",
		Log:               Log{Level: "info"},
		HTTP:              HTTP{Port: 8000},
		Watch:             Watch{Debounce: 100 * time.Millisecond},
	}
}

var defaults = map[string]any{
	"width":              Default().Width,
	"height":             Default().Height,
	"direction":          Default().Direction,
	"gradient_direction": Default().GradientDirection,
	"display_percent":    Default().DisplayPercent,
	"sub_label_value":    Default().SubLabelValue,
	"log.level":          Default().Log.Level,
	"log.file":           Default().Log.File,
	"http.address":       Default().HTTP.Address,
	"http.port":          Default().HTTP.Port,
	"watch.debounce":     Default().Watch.Debounce,
	"dataset.json_path":  Default().Dataset.JSONPath,
	"dataset.sheet":      Default().Dataset.Sheet,
}

// DefineFlags registers a persistent flag for every configuration key on
// rootCmd.
func DefineFlags(rootCmd *cobra.Command) {
	d := Default()
	flags := rootCmd.PersistentFlags()
	flags.Float64P("width", "", d.Width, "width of the funnel")
	flags.Float64P("height", "", d.Height, "height of the funnel")
	flags.StringP("direction", "d", d.Direction, "funnel direction: horizontal or vertical")
	flags.StringP("gradient_direction", "", d.GradientDirection, "gradient direction: horizontal or vertical")
	flags.BoolP("display_percent", "", d.DisplayPercent, "show stage percentages in labels")
	flags.StringP("sub_label_value", "", d.SubLabelValue, "sub label values: percent or raw")
	flags.StringP("log.level", "", d.Log.Level, "set the log level: trace, debug, info, error, fatal or none")
	flags.StringP("log.file", "", d.Log.File, "optional log file - if not specified logs go to STDERR")
	flags.StringP("http.address", "a", d.HTTP.Address, "interface address to listen on")
	flags.IntP("http.port", "p", d.HTTP.Port, "port to bind HTTP server to")
	flags.DurationP("watch.debounce", "", d.Watch.Debounce, "delay before re-rendering a changed dataset")
	flags.StringP("dataset.json_path", "", d.Dataset.JSONPath, "gjson path of the funnel inside a JSON dataset")
	flags.StringP("dataset.sheet", "", d.Dataset.Sheet, "sheet of an xlsx dataset")
}

// GetConfig loads the configuration from defaults, the optional configFile,
// FUNNEL_ environment variables and the flags of cmd, in increasing order of
// precedence. cmd may be nil.
func GetConfig(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key := range defaults {
			if f := cmd.Flags().Lookup(key); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	meta := Meta{}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			var configFileNotFoundError *os.PathError
			if errors.As(err, &configFileNotFoundError) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return conf, meta, nil
}
