// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baymaxhuang/atomix/internal/log"
)

// EnvFile names the environment variable holding an explicit config path.
const EnvFile = "ATOMIX_CFG_FILE"

// Type is a loaded config file. Namespace is the running command; its subtree
// shadows the top level, so "lock.server" wins over "server" for lock.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]any
}

// Config is the process-wide configuration, loaded on first lookup.
var Config Type

var ErrNotFound = errors.New("no config file found in standard locations")

// GetInt returns the int at key, or defaultValue when key is absent.
func GetInt(key string, defaultValue ...int) (int, error) {
	return getAs(key, defaultValue, func(v any) (int, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			return int(n), nil
		}
		return 0, errors.New("value is not an int")
	})
}

// GetString returns the string at key, or defaultValue when key is absent.
func GetString(key string, defaultValue ...string) (string, error) {
	return getAs(key, defaultValue, func(v any) (string, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", errors.New("value is not a string")
	})
}

// GetStringSlice returns the list of strings at key, or defaultValue when key
// is absent.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	return getAs(key, defaultValue, func(v any) ([]string, error) {
		switch list := v.(type) {
		case []string:
			return list, nil
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, errors.New("slice element is not a string")
				}
				out = append(out, s)
			}
			return out, nil
		}
		return nil, errors.New("value is not a slice")
	})
}

// getAs resolves key and converts it. Only a missing key falls back to the
// default; a present value of the wrong type is an error.
func getAs[T any](key string, defaultValue []T, convert func(any) (T, error)) (T, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		var zero T
		return zero, err
	}
	return convert(val)
}

// Load reads the config file into Config, keeping the current Namespace.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

func (cfg *Type) get(key string) (any, error) {
	keys := []string{key}
	if cfg.Namespace != "" {
		keys = []string{cfg.Namespace + "." + key, key}
	}

	for _, k := range keys {
		if v, ok := descend(cfg.Data, strings.Split(k, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no valid path found among: %v", keys)
}

// descend follows path through nested maps.
func descend(node any, path []string) (any, bool) {
	for _, part := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[part]; !ok {
			return nil, false
		}
	}
	return node, true
}

// getConfigFile picks $ATOMIX_CFG_FILE when set, which must then name a
// readable file, else atomix.yaml under os.UserConfigDir.
func getConfigFile() (string, error) {
	if path := os.Getenv(EnvFile); path != "" {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			return "", fmt.Errorf("config file not found at %s path: %s", EnvFile, path)
		case info.IsDir():
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, path)
		}
		log.Debugf("config: %s=%s", EnvFile, path)
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	path := filepath.Join(dir, "atomix.yaml")
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	log.Debugf("config: %s", path)
	return path, nil
}
