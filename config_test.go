package starfield

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Amount != 128 || cfg.Depth != 16 || cfg.Perspective != 128 || cfg.Speed != 5 || cfg.Spread != 25 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero speed", func(c *Config) { c.Speed = 0 }, true},
		{"negative perspective", func(c *Config) { c.Perspective = -1 }, true},
		{"depth two", func(c *Config) { c.Depth = 2 }, true},
		{"zero amount", func(c *Config) { c.Amount = 0 }, false},
		{"negative amount", func(c *Config) { c.Amount = -4 }, false},
		{"depth one", func(c *Config) { c.Depth = 1 }, false},
		{"depth zero", func(c *Config) { c.Depth = 0 }, false},
		{"zero perspective", func(c *Config) { c.Perspective = 0 }, false},
		{"zero spread", func(c *Config) { c.Spread = 0 }, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mod(&cfg)
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestConfigCentered(t *testing.T) {
	cfg := DefaultConfig().Centered(801, 600)
	assertNear(t, "originX", cfg.OriginX, 400.5)
	assertNear(t, "originY", cfg.OriginY, 300)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"amount": 300, "speed": 12.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Amount != 300 {
		t.Errorf("Amount = %d, want 300", cfg.Amount)
	}
	assertNear(t, "Speed", cfg.Speed, 12.5)
	if cfg.Depth != DefaultDepth || cfg.Perspective != DefaultPerspective || cfg.Spread != DefaultSpread {
		t.Errorf("unset fields lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	_, err := LoadConfig([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("parse errors should not be reported as ErrInvalidConfig")
	}
}

func TestLoadConfigValidates(t *testing.T) {
	_, err := LoadConfig([]byte(`{"depth": 1}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
