package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: GRIDVIEW_LOGGING__LEVEL sets logging.level.
const EnvPrefix = "GRIDVIEW_"

// configNames are searched in each directory when no file is given.
//
//nolint:gochecknoglobals // Immutable search list.
var configNames = []string{"gridview.yaml", "gridview.yml"}

// ignoredFlags are command flags that are not configuration keys.
//
//nolint:gochecknoglobals // Immutable set of flag names.
var ignoredFlags = map[string]bool{
	"config": true,
	"debug":  true,
	"help":   true,
}

// LoadOptions selects the layers of one load.
type LoadOptions struct {
	// File is an explicit config path; empty searches Dir and its parents.
	File string

	// Dir starts the gridview.yaml search when File is empty. Defaults to ".".
	Dir string

	// Flags are applied last; only flags the user changed override lower layers.
	Flags *pflag.FlagSet

	// Inputs are positional arguments; when non-empty they replace configured inputs.
	Inputs []string

	// Environ replaces os.Environ for tests. Entries are KEY=VALUE.
	Environ []string
}

// Loaded is a validated configuration plus the file it came from.
type Loaded struct {
	Config
	FileUsed string
}

// Load builds the configuration.
// Precedence (highest to lowest): positional inputs > flags > env vars > config file > defaults.
func Load(opts LoadOptions) (*Loaded, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	fileUsed, err := findConfigFile(opts.File, opts.Dir)
	if err != nil {
		return nil, err
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Environment
	if err := loadEnv(k, opts.Environ); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || ignoredFlags[f.Name] {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Positional inputs
	if len(opts.Inputs) > 0 {
		if err := k.Load(confmap.Provider(map[string]any{KeyInputs: opts.Inputs}, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load inputs: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Loaded{Config: cfg, FileUsed: fileUsed}, nil
}

// findConfigFile returns the explicit path if it exists, else the nearest
// gridview.yaml or gridview.yml at or above dir, else "".
func findConfigFile(explicit, dir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	return FindConfigFile(dir)
}

// Default returns the configuration made of the built-in defaults only.
func Default() Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(Defaults(), "."), nil)
	var cfg Config
	_ = k.Unmarshal("", &cfg)
	return cfg
}

func loadEnv(k *koanf.Koanf, environ []string) error {
	if environ == nil {
		return k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	}

	mp := map[string]any{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if key, v := envValue(name, value); key != "" {
			mp[key] = v
		}
	}
	return k.Load(confmap.Provider(mp, "."), nil)
}

// envValue maps GRIDVIEW_PAGE_SIZE=25 to page_size and GRIDVIEW_LOGGING__LEVEL
// to logging.level. GRIDVIEW_INPUTS is split on commas.
func envValue(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if key == "" {
		return "", nil
	}
	if key == KeyInputs {
		var inputs []string
		for _, in := range strings.Split(value, ",") {
			if in = strings.TrimSpace(in); in != "" {
				inputs = append(inputs, in)
			}
		}
		return key, inputs
	}
	return key, value
}

// flagKey maps kebab-case flag names to config keys: --page-size -> page_size,
// --log-level -> logging.level.
func flagKey(name string) string {
	switch name {
	case "log-level":
		return KeyLogLevel
	case "log-format":
		return KeyLogFormat
	case "log-file":
		return KeyLogFile
	case "search-placeholder":
		return KeySearchPlaceholder
	case "empty-placeholder":
		return KeyEmptyPlaceholder
	default:
		return strings.ReplaceAll(name, "-", "_")
	}
}
