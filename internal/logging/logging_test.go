package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"honnef.co/go/funnel/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	require.Equal(t, zerolog.Disabled, ParseLevel("none"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestSetupLogFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	path := filepath.Join(t.TempDir(), "funnel.log")
	closeFn, err := Setup(config.Log{Level: "debug", File: path})
	require.NoError(t, err)
	require.True(t, Enabled(zerolog.DebugLevel))
	require.False(t, Enabled(zerolog.TraceLevel))

	log.Debug().Str("file", "data.json").Msg("funnel rendered")
	closeFn()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `"message":"funnel rendered"`)
	require.Contains(t, string(b), `"file":"data.json"`)
}

func TestSetupBadLogFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	closeFn, err := Setup(config.Log{File: filepath.Join(t.TempDir(), "missing", "funnel.log")})
	require.Error(t, err)
	require.NotNil(t, closeFn)
	closeFn()
}
