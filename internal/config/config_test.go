// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points ATOMIX_CFG_FILE at a testdata file and resets the
// global Config, both now and when the test ends.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv(EnvFile, absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "http://coordinator:5678", cfg.Data["server"])
				assert.Equal(t, "json", cfg.Data["output"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				lock, ok := cfg.Data["lock"].(map[string]interface{})
				require.True(t, ok, "lock should be a map")
				assert.Equal(t, "http://locks:5678", lock["server"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/path/atomix.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv(EnvFile, "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple value", testFile: "simple.yaml", key: "server", want: "http://coordinator:5678"},
		{name: "nested value", testFile: "nested.yaml", key: "colors.title", want: "#ff0000"},
		{name: "namespace wins", testFile: "nested.yaml", namespace: "lock", key: "server", want: "http://locks:5678"},
		{name: "namespace falls back", testFile: "nested.yaml", namespace: "map", key: "server", want: "http://global:5678"},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"dflt"}, want: "dflt"},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-string value", testFile: "mixed-types.yaml", key: "padding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			Config.Namespace = tt.namespace

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", testFile: "mixed-types.yaml", key: "padding", want: 3},
		{name: "float truncated", testFile: "mixed-types.yaml", key: "ratio", want: 2},
		{name: "missing with default", testFile: "simple.yaml", key: "padding", defaultValue: []int{2}, want: 2},
		{name: "missing without default", testFile: "simple.yaml", key: "padding", wantErr: true},
		{name: "non-int value", testFile: "simple.yaml", key: "server", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "mixed-types.yaml")

	got, err := GetStringSlice("sets")
	require.NoError(t, err)
	assert.Equal(t, []string{"--output yaml", "-c"}, got)

	_, err = GetStringSlice("name")
	assert.EqualError(t, err, "value is not a slice")

	got, err = GetStringSlice("absent", []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}

func TestLoadKeepsNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	Config.Namespace = "lock"

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "lock", cfg.Namespace)

	val, err := cfg.get("dev")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"--output json"}, val)
}
