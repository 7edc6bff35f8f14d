package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hsolberg/wp2md/internal/model"
)

const (
	defaultMyntLayout = "post.html"
	configFolderName  = "wp2md"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

// Config carries the conversion defaults. Precedence is flags over
// environment over config file over built-in defaults; the flag layer
// lives in the cli package.
type Config struct {
	InputFormat  model.InputFormat
	OutputFormat model.OutputFormat
	MyntLayout   string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		InputFormat:  model.InputWPRSS,
		OutputFormat: model.OutputPelican,
		MyntLayout:   defaultMyntLayout,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		if err := applyFileConfig(&cfg, configPath, fileCfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type fileConfig struct {
	InputFormat  *string `toml:"input_format"`
	OutputFormat *string `toml:"output_format"`
	MyntLayout   *string `toml:"mynt_layout"`
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	return cfg, nil
}

func applyFileConfig(cfg *Config, path string, fileCfg fileConfig) error {
	if fileCfg.InputFormat != nil {
		format, err := model.ParseInputFormat(*fileCfg.InputFormat)
		if err != nil {
			return fmt.Errorf("invalid config file %q: %w", path, err)
		}
		cfg.InputFormat = format
	}
	if fileCfg.OutputFormat != nil {
		format, err := model.ParseOutputFormat(*fileCfg.OutputFormat)
		if err != nil {
			return fmt.Errorf("invalid config file %q: %w", path, err)
		}
		cfg.OutputFormat = format
	}
	if fileCfg.MyntLayout != nil {
		if strings.TrimSpace(*fileCfg.MyntLayout) == "" {
			return fmt.Errorf("invalid config file %q: mynt_layout must be non-empty when provided", path)
		}
		cfg.MyntLayout = *fileCfg.MyntLayout
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v, ok := os.LookupEnv("WP2MD_INPUT_FORMAT"); ok && v != "" {
		format, err := model.ParseInputFormat(v)
		if err != nil {
			return fmt.Errorf("WP2MD_INPUT_FORMAT: %w", err)
		}
		cfg.InputFormat = format
	}
	if v, ok := os.LookupEnv("WP2MD_OUTPUT_FORMAT"); ok && v != "" {
		format, err := model.ParseOutputFormat(v)
		if err != nil {
			return fmt.Errorf("WP2MD_OUTPUT_FORMAT: %w", err)
		}
		cfg.OutputFormat = format
	}
	if v, ok := os.LookupEnv("WP2MD_MYNT_LAYOUT"); ok && v != "" {
		cfg.MyntLayout = v
	}
	return nil
}
