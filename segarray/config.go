package segarray

import "fmt"

// DefaultLoad is the target segment length used when Config.Load is zero.
const DefaultLoad = 1000

// Config configures segment sizing.
//
// The zero value is valid and selects DefaultLoad with MinFill = Load/2 and
// MaxFill = 2*Load.
type Config struct {
	// Load is the target segment length. Oversized segments are split at Load.
	Load int
	// MinFill is the lower occupancy bound. Segments below it are merged.
	MinFill int
	// MaxFill is the upper occupancy bound. Segments above it are split.
	MaxFill int
}

func (cfg Config) normalized() Config {
	if cfg.Load == 0 {
		cfg.Load = DefaultLoad
	}
	if cfg.MinFill == 0 {
		cfg.MinFill = max(1, cfg.Load/2)
	}
	if cfg.MaxFill == 0 {
		cfg.MaxFill = 2 * cfg.Load
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Load < 1 {
		return fmt.Errorf("%w: load must be positive, is %d", ErrInvalidConfig, cfg.Load)
	}
	if cfg.MinFill < 1 || cfg.MinFill > max(1, cfg.Load/2) {
		return fmt.Errorf("%w: min fill %d not in [1, load/2]", ErrInvalidConfig, cfg.MinFill)
	}
	if cfg.MaxFill < cfg.Load+cfg.MinFill {
		return fmt.Errorf("%w: max fill %d below load+min fill (%d)",
			ErrInvalidConfig, cfg.MaxFill, cfg.Load+cfg.MinFill)
	}
	return nil
}

// Normalized returns cfg with defaults filled in, or an error if the
// resulting configuration is invalid.
func (cfg Config) Normalized() (Config, error) {
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg.normalized(), nil
}
