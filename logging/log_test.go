package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ens-claim-input/config"
)

func TestInitLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig().LogConfig
	cfg.Level = "WARNING"
	initLogger(&cfg, &buf)

	Logger.Infof("hidden %d", 1)
	require.Zero(t, buf.Len())

	Logger.Warningf("shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
	require.Contains(t, buf.String(), "WARN")
}

func TestInitLoggerWithoutConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig().LogConfig
	cfg.UseConsoleLogger = false
	cfg.UseFileLogger = true
	cfg.Filename = t.TempDir() + "/claim-input.log"
	initLogger(&cfg, &buf)

	Logger.Errorf("to file only")
	require.Zero(t, buf.Len())
}
