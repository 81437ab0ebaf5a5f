package config

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/errors"
	"github.com/amp-labs/lvt/sorting"
)

// Settings drives the lvt command.
type Settings struct {
	LogJSON    bool              `env:"LOG_JSON"        envDefault:"false"`
	LogLevel   slog.Level        `env:"LOG_LEVEL"       envDefault:"INFO"`
	Strategies []string          `env:"LVT_STRATEGIES"  envDefault:"bubble,insertion,selection,shell,quick,merge" envSeparator:","`
	Direction  compare.Direction `env:"LVT_DIRECTION"   envDefault:"ascending"`
	Size       int               `env:"LVT_SIZE"        envDefault:"2000"`
	Workers    int               `env:"LVT_WORKERS"     envDefault:"4"`
	Seed       uint64            `env:"LVT_SEED"        envDefault:"1"`
	Min        int               `env:"LVT_MIN"         envDefault:"-1000"`
	Max        int               `env:"LVT_MAX"         envDefault:"1000"`
	Words      int               `env:"LVT_WORDS"       envDefault:"40"`
	NGram      int               `env:"LVT_NGRAM"       envDefault:"2"`
	ConfigFile string            `env:"LVT_CONFIG_FILE"`
}

// LoadSettings reads Settings, honoring LVT_CONFIG_FILE as a YAML overlay, and validates them.
func LoadSettings(opts ...Option) (*Settings, error) {
	var probe struct {
		ConfigFile string `env:"LVT_CONFIG_FILE"`
	}

	if err := Load(&probe, opts...); err != nil {
		return nil, err
	}

	if probe.ConfigFile != "" {
		opts = append([]Option{WithYAMLFile(probe.ConfigFile)}, opts...)
	}

	s := &Settings{}
	if err := Load(s, opts...); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// SortStrategies parses the configured strategy names.
func (s *Settings) SortStrategies() ([]sorting.Strategy, error) {
	out := make([]sorting.Strategy, 0, len(s.Strategies))

	for _, name := range s.Strategies {
		st, err := sorting.ParseStrategy(name)
		if err != nil {
			return nil, err
		}

		out = append(out, st)
	}

	return out, nil
}

// Validate reports every unusable value at once.
func (s *Settings) Validate() error {
	var errs errors.Collection

	if s.Size <= 0 {
		errs.Addf("%w: LVT_SIZE must be positive, got %d", errors.ErrInvalidConfig, s.Size)
	}

	if s.Workers <= 0 {
		errs.Addf("%w: LVT_WORKERS must be positive, got %d", errors.ErrInvalidConfig, s.Workers)
	}

	if s.Min > s.Max {
		errs.Addf("%w: LVT_MIN %d exceeds LVT_MAX %d", errors.ErrInvalidConfig, s.Min, s.Max)
	}

	if s.Words < 0 {
		errs.Addf("%w: LVT_WORDS must not be negative", errors.ErrInvalidConfig)
	}

	if s.NGram <= 0 {
		errs.Addf("%w: LVT_NGRAM must be positive, got %d", errors.ErrInvalidConfig, s.NGram)
	}

	if len(s.Strategies) == 0 {
		errs.Addf("%w: LVT_STRATEGIES is empty", errors.ErrInvalidConfig)
	}

	if _, err := s.SortStrategies(); err != nil {
		errs.Add(fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err))
	}

	return errs.GetError()
}
