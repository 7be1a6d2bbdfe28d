package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"honnef.co/go/funnel"
	"honnef.co/go/funnel/view"
)

func getConfig(t *testing.T, configFile string) (Config, Meta) {
	t.Helper()
	conf, meta, err := GetConfig(nil, configFile)
	require.NoError(t, err)
	return conf, meta
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func checkConfig(t *testing.T, conf Config) {
	t.Helper()
	require.Equal(t, 800.0, conf.Width)
	require.Equal(t, 400.0, conf.Height)
	require.Equal(t, "vertical", conf.Direction)
	require.True(t, conf.DisplayPercent)
	require.Equal(t, "raw", conf.SubLabelValue)
	require.Equal(t, "debug", conf.Log.Level)
	require.Equal(t, 9000, conf.HTTP.Port)
	require.Equal(t, 250*time.Millisecond, conf.Watch.Debounce)
	require.NoError(t, conf.Validate())
}

func TestConfigDefaults(t *testing.T) {
	conf, meta := getConfig(t, "")
	require.False(t, meta.FileNotFound)
	require.Equal(t, Default(), conf)
	require.NoError(t, conf.Validate())
}

func TestConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "width": 800,
  "height": 400,
  "direction": "vertical",
  "display_percent": true,
  "sub_label_value": "raw",
  "log": {"level": "debug"},
  "http": {"port": 9000},
  "watch": {"debounce": "250ms"}
}`)
	conf, _ := getConfig(t, path)
	checkConfig(t, conf)
}

func TestConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `width: 800
height: 400
direction: vertical
display_percent: true
sub_label_value: raw
log:
  level: debug
http:
  port: 9000
watch:
  debounce: 250ms
`)
	conf, _ := getConfig(t, path)
	checkConfig(t, conf)
}

func TestConfigTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `width = 800
height = 400
direction = "vertical"
display_percent = true
sub_label_value = "raw"

[log]
level = "debug"

[http]
port = 9000

[watch]
debounce = "250ms"
`)
	conf, _ := getConfig(t, path)
	checkConfig(t, conf)
}

func TestConfigFileNotFound(t *testing.T) {
	conf, meta := getConfig(t, filepath.Join(t.TempDir(), "missing.json"))
	require.True(t, meta.FileNotFound)
	require.Equal(t, Default(), conf)
}

func TestConfigMalformedFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"width": `)
	_, _, err := GetConfig(nil, path)
	require.Error(t, err)
}

func TestConfigEnvVars(t *testing.T) {
	t.Setenv("FUNNEL_WIDTH", "1024")
	t.Setenv("FUNNEL_LOG_LEVEL", "warn")
	t.Setenv("FUNNEL_WATCH_DEBOUNCE", "2s")
	t.Setenv("FUNNEL_DISPLAY_PERCENT", "true")

	path := writeFile(t, "config.yaml", "width: 800\nheight: 500\n")
	conf, _ := getConfig(t, path)
	require.Equal(t, 1024.0, conf.Width)
	require.Equal(t, 500.0, conf.Height)
	require.Equal(t, "warn", conf.Log.Level)
	require.Equal(t, 2*time.Second, conf.Watch.Debounce)
	require.True(t, conf.DisplayPercent)
}

func TestConfigFlags(t *testing.T) {
	t.Setenv("FUNNEL_HEIGHT", "700")

	cmd := &cobra.Command{Use: "funnel"}
	DefineFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--height", "350", "-d", "vertical", "-p", "9100"}))

	conf, _, err := GetConfig(cmd, "")
	require.NoError(t, err)
	require.Equal(t, 350.0, conf.Height)
	require.Equal(t, "vertical", conf.Direction)
	require.Equal(t, 9100, conf.HTTP.Port)
	require.Equal(t, Default().Width, conf.Width)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"NaN width", func(c *Config) { c.Width = math.NaN() }},
		{"infinite width", func(c *Config) { c.Width = math.Inf(1) }},
		{"NaN height", func(c *Config) { c.Height = math.NaN() }},
		{"direction", func(c *Config) { c.Direction = "diagonal" }},
		{"gradient direction", func(c *Config) { c.GradientDirection = "up" }},
		{"sub label value", func(c *Config) { c.SubLabelValue = "ratio" }},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }},
		{"port", func(c *Config) { c.HTTP.Port = 70000 }},
		{"debounce", func(c *Config) { c.Watch.Debounce = -time.Second }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestGraphOptions(t *testing.T) {
	c := Default()
	c.Direction = "Vertical"
	c.SubLabelValue = "raw"
	c.DisplayPercent = true
	opts := c.GraphOptions()
	require.Equal(t, funnel.Vertical, opts.Direction)
	require.Equal(t, funnel.Horizontal, opts.GradientDirection)
	require.Equal(t, view.Raw, opts.SubLabelValue)
	require.True(t, opts.DisplayPercent)
	require.Equal(t, c.Width, opts.Width)
	require.Equal(t, c.Height, opts.Height)
	require.Nil(t, opts.Data)
}
