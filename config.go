package sorted

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sorted/segarray"
)

const (
	// DefaultLoad is the default target segment length.
	DefaultLoad = segarray.DefaultLoad
	// DefaultUpdateRatio is the default crossover for bulk updates: a batch of
	// m values into a list of n elements is merged by rebuilding when
	// m >= DefaultUpdateRatio*n.
	DefaultUpdateRatio = 0.5
	// DefaultRebuildFactor is the default crossover for deleting a contiguous
	// range of count elements: the list is rebuilt from the complement when
	// n <= DefaultRebuildFactor*count.
	DefaultRebuildFactor = 8
)

// Config configures a list. Zero fields select defaults.
type Config struct {
	// Load is the target segment length.
	Load int
	// MinFill is the lower segment occupancy bound, default Load/2.
	MinFill int
	// MaxFill is the upper segment occupancy bound, default 2*Load.
	MaxFill int
	// UpdateRatio governs when Update rebuilds instead of inserting values
	// one by one.
	UpdateRatio float64
	// RebuildFactor governs when deleting a contiguous slice rebuilds the
	// list from the remaining elements.
	RebuildFactor int
}

func (cfg Config) normalized() Config {
	if cfg.UpdateRatio == 0 {
		cfg.UpdateRatio = DefaultUpdateRatio
	}
	if cfg.RebuildFactor == 0 {
		cfg.RebuildFactor = DefaultRebuildFactor
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.UpdateRatio < 0 {
		return fmt.Errorf("%w: negative update ratio %g", ErrInvalidConfig, cfg.UpdateRatio)
	}
	if cfg.RebuildFactor < 0 {
		return fmt.Errorf("%w: negative rebuild factor %d", ErrInvalidConfig, cfg.RebuildFactor)
	}
	if _, err := cfg.segments().Normalized(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func (cfg Config) segments() segarray.Config {
	return segarray.Config{
		Load:    cfg.Load,
		MinFill: cfg.MinFill,
		MaxFill: cfg.MaxFill,
	}
}
