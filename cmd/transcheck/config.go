// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

const defaultConfigFile = ".transcheck.yaml"

var (
	errNoBaseLocale  = errors.New("baseLocale must be set")
	errNoLocalesDir  = errors.New("localesDir must be set")
	errNoLanguages   = errors.New("languages must list at least one locale")
	errNotJSONObject = errors.New("catalog is not a JSON object")
	errNonStringItem = errors.New("catalog value is not a string")
)

// checkConfig is the transcheck configuration. The languages map mirrors
// the translation platform's project config: locale code → display name.
type checkConfig struct {
	BaseLocale string            `yaml:"baseLocale"`
	LocalesDir string            `yaml:"localesDir"`
	Languages  map[string]string `yaml:"languages"`
}

// readConfig loads and validates the YAML configuration at path.
func readConfig(path string) (*checkConfig, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if err != nil {
		return nil, err
	}

	var cfg checkConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.BaseLocale == "" {
		return nil, errNoBaseLocale
	}

	if cfg.LocalesDir == "" {
		return nil, errNoLocalesDir
	}

	if len(cfg.Languages) == 0 {
		return nil, errNoLanguages
	}

	return &cfg, nil
}

// locales returns the configured locale codes, base locale included,
// sorted for deterministic processing.
func (cfg *checkConfig) locales() []string {
	out := make([]string, 0, len(cfg.Languages)+1)
	for locale := range cfg.Languages {
		out = append(out, locale)
	}

	if _, ok := cfg.Languages[cfg.BaseLocale]; !ok {
		out = append(out, cfg.BaseLocale)
	}

	sort.Strings(out)

	return out
}

// catalogPath returns the JSON catalog file for locale.
func (cfg *checkConfig) catalogPath(locale string) string {
	return filepath.Join(cfg.LocalesDir, locale+".json")
}

// readCatalog loads a flat key → message JSON catalog.
func readCatalog(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- Path comes from the config
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", path)
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%s: %w", path, errNotJSONObject)
	}

	catalog := make(map[string]string)

	var badKey string

	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			badKey = key.String()

			return false
		}

		catalog[key.String()] = value.String()

		return true
	})

	if badKey != "" {
		return nil, fmt.Errorf("%s: key %q: %w", path, badKey, errNonStringItem)
	}

	return catalog, nil
}
