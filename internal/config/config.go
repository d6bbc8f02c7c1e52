// internal/config/config.go
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

// Config holds the tool-level settings shared by every subcommand.
// Precedence, lowest to highest: defaults, strscan.yaml, STRSCAN_* env
// variables, command-line flags.
type Config struct {
	// Output is the result format: text | table | json | jsonl.
	// Empty means auto: table on a terminal, text otherwise.
	Output string `koanf:"output"`
	// Header controls the header line of text output.
	Header bool `koanf:"header"`
	// Threads bounds the scan worker pool; 0 means all CPUs.
	Threads int `koanf:"threads"`
}

// findConfigFile resolves the config path: explicit path wins, then
// strscan.yaml / strscan.yml in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"strscan.yaml", "strscan.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load layers defaults, the optional config file, environment, and flags into
// a Config. A missing config file is only an error when it was named
// explicitly.
func Load(explicitFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  "",
		"header":  true,
		"threads": 0,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	cfgFile := findConfigFile(explicitFile)
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	// STRSCAN_OUTPUT -> output, etc.
	if err := k.Load(env.Provider("STRSCAN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STRSCAN_"))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Threads < 0 {
		return Config{}, fmt.Errorf("threads must be >= 0, got %d", cfg.Threads)
	}
	return cfg, nil
}
