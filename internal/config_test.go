package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pErrors "partyline/errors"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	req.NoError(err)
	req.Equal(8080, config.HTTPPort)
	req.Equal(BackendLocal, config.BackendMode)
	req.Equal("local", config.InCallToggle)
	req.Equal(time.Second, config.AnnouncementTTL)
	req.Equal(500*time.Millisecond, config.SimulatedMemberDelay)
	req.Equal(150, config.SummaryMaxTokens)
	req.Equal(0.5, config.SummaryTemperature)
	req.False(config.SummarizerEnabled())
}

func TestLoadConfig_Env_File(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	file := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(file, []byte("HTTP_PORT=7070\nIN_CALL_TOGGLE=sync\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("IN_CALL_TOGGLE") })

	config, err := LoadConfig(file)

	// The environment wins over the file
	req.NoError(err)
	req.Equal(9090, config.HTTPPort)
	req.Equal("sync", config.InCallToggle)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		badger      bool
		env         map[string]string
	}{
		{"Should fail without badger path", false, nil},
		{"Should fail with an unknown backend mode", true, map[string]string{"BACKEND_MODE": "carrier-pigeon"}},
		{"Should fail in grpc mode without address", true, map[string]string{"BACKEND_MODE": "grpc"}},
		{"Should fail with an unknown toggle policy", true, map[string]string{"IN_CALL_TOGGLE": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			t.Setenv("BADGER_FILEPATH", t.TempDir())
			if !tt.badger {
				_ = os.Unsetenv("BADGER_FILEPATH")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

			require.ErrorIs(t, err, pErrors.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_Simulated_Without_Badger(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "")
	t.Setenv("BACKEND_MODE", "simulated")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	// Only the local backend stores calls
	req.NoError(err)
	req.Equal(BackendSimulated, config.BackendMode)
}
