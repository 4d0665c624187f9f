// Package Config loads the benchmark configuration with priority Flag > Env > File > Default.
package Config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/g-m-twostay/repobench/Bench"
	"github.com/g-m-twostay/repobench/Repos"
	"github.com/g-m-twostay/repobench/Report"
)

// EnvPrefix is the prefix of environment variables: REPOBENCH_MAX_PARALLEL -> max_parallel, REPOBENCH_LOG__LEVEL -> log.level.
const EnvPrefix = "REPOBENCH_"

// NoRecords marks Records as unset; the CLI then asks for it interactively.
const NoRecords int64 = -1

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Metrics struct {
	PushURL string `koanf:"push_url"`
	Job     string `koanf:"job"`
}

type Config struct {
	Records     int64    `koanf:"records"`
	MaxParallel int      `koanf:"max_parallel"`
	Strategies  []string `koanf:"strategies"`
	Output      string   `koanf:"output"`
	Log         Log      `koanf:"log"`
	Metrics     Metrics  `koanf:"metrics"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Records:     NoRecords,
		MaxParallel: Bench.DefaultMaxParallel,
		Strategies:  Repos.DefaultKinds(),
		Output:      Report.Table,
		Log:         Log{Level: "info", Format: "text"},
		Metrics:     Metrics{Job: "repobench"},
	}
}

func (c Config) defaults() map[string]any {
	return map[string]any{
		"records":      c.Records,
		"max_parallel": c.MaxParallel,
		"strategies":   c.Strategies,
		"output":       c.Output,
		"log.level":    c.Log.Level,
		"log.format":   c.Log.Format,
		"metrics.job":  c.Metrics.Job,
	}
}

// Interactive reports whether the record count still has to be asked for.
func (c Config) Interactive() bool {
	return c.Records == NoRecords
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	var errs []error
	if c.Records < NoRecords {
		errs = append(errs, fmt.Errorf("records must be non-negative, got %d", c.Records))
	}
	if c.MaxParallel < 1 {
		errs = append(errs, fmt.Errorf("max_parallel must be at least 1, got %d", c.MaxParallel))
	}
	if len(c.Strategies) == 0 {
		errs = append(errs, errors.New("at least one strategy is required"))
	}
	for _, s := range c.Strategies {
		if _, err := Repos.New(s); err != nil {
			errs = append(errs, err)
		}
	}
	if !slices.Contains(Report.Formats(), strings.ToLower(c.Output)) {
		errs = append(errs, fmt.Errorf("unknown output %q, want one of %v", c.Output, Report.Formats()))
	}
	return errors.Join(errs...)
}

// Loader loads Config from defaults, an optional YAML file, the environment and explicitly set flags.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

type Option func(*Loader)

func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges, in increasing priority, Default(), the file, the environment and flags, then validates the result.
// flags holds only the values the user set explicitly, keyed like the file ("log.level").
func (l *Loader) Load(flags map[string]any) (Config, error) {
	if err := l.k.Load(mapProvider(Default().defaults()), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load file %s: %w", l.filePath, err)
		}
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	if len(flags) > 0 {
		if err := l.k.Load(mapProvider(flags), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}
	var c Config
	if err := l.k.Unmarshal("", &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// envKey maps REPOBENCH_LOG__LEVEL to log.level and REPOBENCH_MAX_PARALLEL to max_parallel.
func (l *Loader) envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
