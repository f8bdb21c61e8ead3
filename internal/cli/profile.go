package cli

import (
	"bytes"
	"cmp"
	"fmt"
	"os"

	"github.com/npillmayer/sorted"
	"gopkg.in/yaml.v3"
)

// Profile defines a benchmark workload: the list configuration, the initial
// size and a weighted mix of operations.
type Profile struct {
	// Name identifies this profile in reports.
	Name string `yaml:"name"`

	// Load, UpdateRatio and RebuildFactor configure the list. Zero values
	// select the library defaults.
	Load          int     `yaml:"load,omitempty"`
	UpdateRatio   float64 `yaml:"update_ratio,omitempty"`
	RebuildFactor int     `yaml:"rebuild_factor,omitempty"`

	// Size is the number of random values the list starts with.
	Size int `yaml:"size"`

	// Ops is the number of operations to run after the initial fill.
	Ops int `yaml:"ops"`

	// Seed makes runs reproducible. 0 selects a fixed default seed.
	Seed int64 `yaml:"seed,omitempty"`

	// Range bounds the random values to [0, Range). Default 10*Size.
	Range int `yaml:"range,omitempty"`

	// Mix holds relative weights of the operations.
	Mix Mix `yaml:"mix"`

	// Batch is the size of bulk updates and of deleted slices.
	Batch int `yaml:"batch,omitempty"`
}

// Mix holds relative weights of benchmark operations.
type Mix struct {
	Add         int `yaml:"add,omitempty"`
	Discard     int `yaml:"discard,omitempty"`
	Contains    int `yaml:"contains,omitempty"`
	At          int `yaml:"at,omitempty"`
	Bisect      int `yaml:"bisect,omitempty"`
	Update      int `yaml:"update,omitempty"`
	DeleteSlice int `yaml:"delete_slice,omitempty"`
	IRange      int `yaml:"irange,omitempty"`
}

// operations lists operation names with their weights, in a fixed order.
func (m Mix) operations() []weighted {
	return []weighted{
		{"add", m.Add}, {"discard", m.Discard}, {"contains", m.Contains},
		{"at", m.At}, {"bisect", m.Bisect}, {"update", m.Update},
		{"delete_slice", m.DeleteSlice}, {"irange", m.IRange},
	}
}

type weighted struct {
	name   string
	weight int
}

// DefaultProfile is used if no profile file is given.
var DefaultProfile = Profile{
	Name:  "default",
	Size:  100000,
	Ops:   100000,
	Mix:   Mix{Add: 4, Discard: 3, Contains: 2, At: 2, Bisect: 2, Update: 1, DeleteSlice: 1, IRange: 1},
	Batch: 100,
}

// LoadProfile reads and parses a profile YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or fails validation.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	p := DefaultProfile
	p.Mix = Mix{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Size < 0 || p.Ops < 0 || p.Batch < 0 || p.Range < 0 {
		return fmt.Errorf("size, ops, batch and range must not be negative")
	}
	total := 0
	for _, op := range p.Mix.operations() {
		if op.weight < 0 {
			return fmt.Errorf("weight of %s must not be negative", op.name)
		}
		total += op.weight
	}
	if total == 0 && p.Ops > 0 {
		return fmt.Errorf("operation mix is empty")
	}
	if _, err := sorted.NewFunc(cmp.Compare[int], p.config()); err != nil {
		return err
	}
	return nil
}

func (p *Profile) config() sorted.Config {
	return sorted.Config{Load: p.Load, UpdateRatio: p.UpdateRatio, RebuildFactor: p.RebuildFactor}
}
