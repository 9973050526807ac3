package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// New loads config/config.yaml (searched upwards from the working directory)
// with environment overrides, fills defaults and validates the result.
func New() (*Config, error) {
	loadDotEnv(".env", "../.env", "../../.env")

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs and
// overlays environment variables. REMINDER_LEADDAYS sets reminder.leadDays.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	known := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "working directory")
	}

	candidates := []string{filepath.Join(wd, filename)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, filename))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found (looked in %s)", filename, strings.Join(candidates, ", "))
}

// loadDotEnv loads the first readable .env file. Variables already set in the
// process keep their value.
func loadDotEnv(paths ...string) {
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
