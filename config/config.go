// Package config loads settings structs from the environment.
//
// Values come from three layers, later ones winning:
//
//  1. an optional flat YAML file (KEY: value),
//  2. optional .env files,
//  3. the process environment.
//
// Struct fields are bound with caarlos0/env tags:
//
//	type Settings struct {
//		Size int `env:"LVT_SIZE" envDefault:"2000"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithEnvFiles(".env")); err != nil {
//		log.Fatal(err)
//	}
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrLoad wraps every failure to read or parse configuration.
var ErrLoad = errors.New("config: load failed")

type options struct {
	yamlFile     string
	envFiles     []string
	environment  map[string]string
	requireFiles bool
}

// Option customizes Load.
type Option func(*options)

// WithYAMLFile reads a flat YAML mapping of variable names to values as the lowest layer.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		o.yamlFile = path
	}
}

// WithEnvFiles reads .env style files. Later files override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithEnvironment replaces the process environment as the top layer.
// Mostly useful for tests.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		o.environment = env
	}
}

// RequireFiles makes missing YAML or .env files an error instead of being skipped.
func RequireFiles() Option {
	return func(o *options) {
		o.requireFiles = true
	}
}

// Load fills cfg, a pointer to a struct, from the configured layers.
func Load[T any](cfg *T, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	merged, err := o.layers()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: merged}); err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return nil
}

// MustLoad is Load that panics, for use during startup.
func MustLoad[T any](cfg *T, opts ...Option) {
	if err := Load(cfg, opts...); err != nil {
		panic(err)
	}
}

func (o *options) layers() (map[string]string, error) {
	merged := make(map[string]string)

	if o.yamlFile != "" {
		vals, err := readYAML(o.yamlFile)
		if err != nil && (o.requireFiles || !errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}

		maps.Copy(merged, vals)
	}

	for _, path := range o.envFiles {
		vals, err := godotenv.Read(path)
		if err != nil {
			if o.requireFiles || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: reading %s: %w", ErrLoad, path, err)
			}

			continue
		}

		maps.Copy(merged, vals)
	}

	if o.environment != nil {
		maps.Copy(merged, o.environment)
	} else {
		maps.Copy(merged, processEnv())
	}

	return merged, nil
}

func readYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := make(map[string]string, len(raw))

	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case []any:
			parts := make([]string, len(val))
			for i, p := range val {
				parts[i] = fmt.Sprint(p)
			}

			out[k] = strings.Join(parts, ",")
		default:
			out[k] = fmt.Sprint(val)
		}
	}

	return out, nil
}

func processEnv() map[string]string {
	out := make(map[string]string)

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}

	return out
}
