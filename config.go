package starfield

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Defaults match the classic projection starfield look.
const (
	DefaultAmount      = 128
	DefaultDepth       = 16
	DefaultPerspective = 128.0
	DefaultSpeed       = 5.0
	DefaultSpread      = 25
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("starfield: invalid config")

// Config controls the simulator and projection.
type Config struct {
	// Amount is the star pool size. Constant for the simulator's lifetime.
	Amount int `json:"amount"`
	// Depth is the farthest spawn depth. Must be greater than 1.
	Depth int `json:"depth"`
	// Perspective is the projection strength (perspective / z scaling).
	Perspective float64 `json:"perspective"`
	// Speed is the number of depth units travelled per second. The sign is
	// ignored.
	Speed float64 `json:"speed"`
	// Spread bounds the lateral spawn offsets to [-Spread, Spread] without 0.
	Spread int `json:"spread"`
	// OriginX and OriginY are the screen point that 3D (0, 0) projects to.
	OriginX float64 `json:"originX"`
	OriginY float64 `json:"originY"`
	// Seed seeds the default random source. Zero means time based.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns a Config with the classic defaults. The origin is left
// at zero; hosts center it on their screen.
func DefaultConfig() Config {
	return Config{
		Amount:      DefaultAmount,
		Depth:       DefaultDepth,
		Perspective: DefaultPerspective,
		Speed:       DefaultSpeed,
		Spread:      DefaultSpread,
	}
}

// Validate reports the first configuration problem, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Amount <= 0:
		return fmt.Errorf("%w: amount %d must be > 0", ErrInvalidConfig, c.Amount)
	case c.Depth <= 1:
		return fmt.Errorf("%w: depth %d must be > 1", ErrInvalidConfig, c.Depth)
	case c.Perspective == 0:
		return fmt.Errorf("%w: perspective must be non-zero", ErrInvalidConfig)
	case c.Spread <= 0:
		return fmt.Errorf("%w: spread %d must be > 0", ErrInvalidConfig, c.Spread)
	}
	return nil
}

// Centered returns a copy of c with the origin at the middle of a
// width x height screen.
func (c Config) Centered(width, height int) Config {
	c.OriginX = float64(width) * 0.5
	c.OriginY = float64(height) * 0.5
	return c
}

// LoadConfig parses a JSON config. Fields missing from the document keep
// their DefaultConfig values. The result is validated.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("starfield: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
