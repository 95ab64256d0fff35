package permit

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/supremind/permit/internal/decider"
	"github.com/supremind/permit/types"
)

// New creates a permission Decider over a schema and a rule table.
//
// The table must be total: one rule for every (role, resource, action) triple
// the schema declares. New walks the whole space once and refuses an
// incomplete or over-declared table with an error naming every bad triple.
// A process should treat that error as fatal, a service must not take traffic
// with a broken permission table.
//
// The returned Decider keeps private copies of schema and table and never
// changes them again: checks are pure lookups, safe for concurrent use.
func New(schema types.Schema, table types.Table, opts ...Option) (types.Decider, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log.GetSink() == nil {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}

	if e := decider.Validate(schema, table); e != nil {
		return nil, fmt.Errorf("validate permission table failed: %w", e)
	}

	return decider.New(schema, table, cfg.log.WithName("decider"), cfg.presets...), nil
}

// WithPresetPolicies adds preset policies to the decider,
// they are consulted before the rule table on every check
func WithPresetPolicies(presets ...types.PresetPolicy) Option {
	return func(cfg *Config) {
		cfg.presets = append(cfg.presets, presets...)
	}
}

// WithLogger sets logger for permit components
func WithLogger(l logr.Logger) Option {
	return func(cfg *Config) {
		cfg.log = l
	}
}

// Config works together with Option to control the initialization of a decider
type Config struct {
	presets []types.PresetPolicy
	log     logr.Logger
}

// Option controls how to init a decider
type Option func(*Config)
