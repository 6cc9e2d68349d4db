package config

import (
	"os"
	"testing"
	"time"
)

func clearTimeoutEnvVars() {
	os.Unsetenv("LIVEPIPE_POLL_INTERVAL")
	os.Unsetenv("LIVEPIPE_POLL_TIMEOUT")
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	clearTimeoutEnvVars()

	timeouts := LoadTimeouts()

	if timeouts.PollInterval != 2*time.Second {
		t.Errorf("Expected PollInterval default 2s, got %v", timeouts.PollInterval)
	}
	if timeouts.PollTimeout != 0 {
		t.Errorf("Expected PollTimeout default 0, got %v", timeouts.PollTimeout)
	}
}

func TestLoadTimeouts_EnvOverrides(t *testing.T) {
	clearTimeoutEnvVars()
	t.Setenv("LIVEPIPE_POLL_INTERVAL", "500ms")
	t.Setenv("LIVEPIPE_POLL_TIMEOUT", "10m")

	timeouts := LoadTimeouts()

	if timeouts.PollInterval != 500*time.Millisecond {
		t.Errorf("Expected PollInterval 500ms, got %v", timeouts.PollInterval)
	}
	if timeouts.PollTimeout != 10*time.Minute {
		t.Errorf("Expected PollTimeout 10m, got %v", timeouts.PollTimeout)
	}
}

func TestLoadTimeouts_InvalidValues(t *testing.T) {
	clearTimeoutEnvVars()
	t.Setenv("LIVEPIPE_POLL_INTERVAL", "soon")
	t.Setenv("LIVEPIPE_POLL_TIMEOUT", "-5s")

	timeouts := LoadTimeouts()

	if timeouts.PollInterval != 2*time.Second {
		t.Errorf("Expected invalid PollInterval to fall back to 2s, got %v", timeouts.PollInterval)
	}
	if timeouts.PollTimeout != 0 {
		t.Errorf("Expected negative PollTimeout to fall back to 0, got %v", timeouts.PollTimeout)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want int
	}{
		{"unset", "", 7},
		{"valid", "3", 3},
		{"invalid", "three", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LIVEPIPE_TEST_INT", tt.val)
			if got := parseInt("LIVEPIPE_TEST_INT", 7); got != tt.want {
				t.Errorf("parseInt() = %d, want %d", got, tt.want)
			}
		})
	}
}
