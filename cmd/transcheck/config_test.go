// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "transcheck.yaml", `
baseLocale: en
localesDir: ./locales
languages:
  en: English
  ru: Русский
  pt-br: Português (Brasil)
`)

	cfg, err := readConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.BaseLocale)
	assert.Equal(t, "./locales", cfg.LocalesDir)
	assert.Equal(t, []string{"en", "pt-br", "ru"}, cfg.locales())
	assert.Equal(t,
		filepath.Join("locales", "ru.json"),
		cfg.catalogPath("ru"),
	)
}

func TestReadConfigRejectsIncomplete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no base locale",
			content: "localesDir: x\nlanguages: {en: English}\n",
			wantErr: errNoBaseLocale,
		},
		{
			name:    "no locales dir",
			content: "baseLocale: en\nlanguages: {en: English}\n",
			wantErr: errNoLocalesDir,
		},
		{
			name:    "no languages",
			content: "baseLocale: en\nlocalesDir: x\n",
			wantErr: errNoLanguages,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, dir, tt.name+".yaml", tt.content)

			_, err := readConfig(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "en.json", `{
		"greeting": "hi <b>%name%</b>!",
		"files_count": "%n% file|%n% files"
	}`)

	catalog, err := readCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"greeting":    "hi <b>%name%</b>!",
		"files_count": "%n% file|%n% files",
	}, catalog)
}

func TestReadCatalogRejectsBadInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := readCatalog(writeFile(t, dir, "trunc.json", `{"a": "b"`))
	require.Error(t, err)

	_, err = readCatalog(writeFile(t, dir, "array.json", `["a"]`))
	require.ErrorIs(t, err, errNotJSONObject)

	_, err = readCatalog(writeFile(t, dir, "nested.json", `{"a": {"b": "c"}}`))
	require.ErrorIs(t, err, errNonStringItem)
}
