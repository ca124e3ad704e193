package spin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 7, cfg.SlotCount)
	require.Equal(t, 10, cfg.StripRepeat)
	require.Equal(t, 2, cfg.FullSpins)
	require.Equal(t, 50.0, cfg.Speed)
}

func TestSetDefaults_FillsZeroFields(t *testing.T) {
	var cfg Config
	SetDefaults(&cfg)

	require.Equal(t, 7, cfg.SlotCount)
	require.Equal(t, 80*time.Millisecond, cfg.SlowMinDelay)
	// Speed 0 stays: it is a valid (slowest) setting.
	require.Equal(t, 0.0, cfg.Speed)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"even slot count", func(c *Config) { c.SlotCount = 6 }},
		{"zero slot count", func(c *Config) { c.SlotCount = 0 }},
		{"zero strip repeat", func(c *Config) { c.StripRepeat = 0 }},
		{"zero full spins", func(c *Config) { c.FullSpins = 0 }},
		{"speed above range", func(c *Config) { c.Speed = 101 }},
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"negative delay", func(c *Config) { c.FastMinDelay = -time.Millisecond }},
		{"slow max below slow min", func(c *Config) { c.SlowMaxDelay = c.SlowMinDelay / 2 }},
		{"fast pair slower than slow pair", func(c *Config) { c.FastMaxDelay = c.SlowMaxDelay * 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 75
	cfg.SlowMaxDelay = 500 * time.Millisecond

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

func TestTestConfig_FasterThanDefault(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Less(t, cfg.SlowMaxDelay, DefaultConfig().FastMinDelay)
}
