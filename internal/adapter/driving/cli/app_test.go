package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"-v", "unidades",
		"-p", "mensal",
		"-u", "Unidade A",
		"-y", "csv,html",
		"-d", "reports",
		"--ticker",
		"--ticker-cycles", "3",
		"--log-level", "debug",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, "unidades", args.Variant)
	assert.Equal(t, "mensal", args.Period)
	assert.Equal(t, "Unidade A", args.Unit)
	assert.Equal(t, []string{"csv", "html"}, args.ReportType)
	assert.True(t, filepath.IsAbs(args.Dir))
	assert.Equal(t, "reports", filepath.Base(args.Dir))
	assert.True(t, args.Ticker)
	assert.Equal(t, 3, args.TickerCycles)
	assert.Equal(t, "debug", args.LogLevel)
	assert.False(t, args.Interactive)
}

func TestParseArgsDefaults(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags(nil))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Empty(t, args.Dir)
	assert.Empty(t, args.ReportType)
	assert.Equal(t, 1, args.TickerCycles)
}
