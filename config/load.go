package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvPrefix  = "GALAXY_MONKEY_"
	EnvConfig  = EnvPrefix + "CONFIG"
	DotEnvFile = ".env"
)

// Load builds the configuration: defaults, then .env, then the TOML file
// (path, or $GALAXY_MONKEY_CONFIG when path is empty), then GALAXY_MONKEY_* overrides
func Load(path string) (*Config, error) {
	return load(DotEnvFile, path)
}

func load(envFile, path string) (*Config, error) {
	cfg := Default()
	sources := []string{"defaults"}

	// godotenv does not override variables already present in the environment
	if err := godotenv.Load(envFile); err == nil {
		sources = append(sources, envFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := decodeFile(cfg, path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	if applyEnv(cfg) {
		sources = append(sources, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Source = strings.Join(sources, " > ")
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}
	return nil
}

// applyEnv applies GALAXY_MONKEY_* overrides, malformed values are ignored
// Returns true if any variable was applied
func applyEnv(cfg *Config) bool {
	applied := false

	if v, ok := lookup("AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
			applied = true
		}
	}

	// 0-100 converted to 0.0-1.0
	if v, ok := lookup("MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
			applied = true
		}
	}

	if v, ok := lookup("SFX_VOLUMES"); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if cfg.Audio.Volumes == nil {
				cfg.Audio.Volumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				cfg.Audio.Volumes[name] = vol
			}
			applied = true
		}
	}

	if v, ok := lookup("SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
			applied = true
		}
	}

	if v, ok := lookup("DEADZONE"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Tuning.Deadzone = f
			applied = true
		}
	}

	if v, ok := lookup("KEY_HOLD_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Tuning.KeyHoldMs = n
			applied = true
		}
	}

	if v, ok := lookup("OVERLAY"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug.Overlay = b
			applied = true
		}
	}

	return applied
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
