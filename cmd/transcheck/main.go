// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Transcheck validates translated message catalogs against the base locale.

It reads a YAML configuration (default .transcheck.yaml) naming the base
locale, the catalog directory and the locales to check, loads the
<locale>.json catalogs and reports, per locale: keys missing from the
translation, keys no longer in the base catalog, messages whose tag and
placeholder structure drifted from the source, and plural strings with
the wrong number of forms.

The exit code is non-zero when any locale has problems, so the command
can gate CI on translation quality.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/adminfe/translate"
)

func main() {
	log.Logger = log.Output(consoleWriter(os.Stderr))

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Validation failed")
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigFile, "path to the transcheck configuration file")
	jsonLog := flag.Bool("json", false, "emit JSON logs regardless of TTY")
	flag.Parse()

	if *jsonLog {
		log.Logger = log.Output(os.Stderr)
	}

	cfg, err := readConfig(*configPath)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	catalogs := make(map[string]translate.Catalog, len(cfg.Languages)+1)

	for _, locale := range cfg.locales() {
		catalog, err := readCatalog(cfg.catalogPath(locale))
		if err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}

		catalogs[locale] = catalog

		log.Info().
			Str("locale", locale).
			Int("keys", len(catalog)).
			Msg("Loaded catalog")
	}

	tr, err := translate.New(cfg.BaseLocale, catalogs)
	if err != nil {
		return fmt.Errorf("building translator: %w", err)
	}

	report, err := validateAll(tr, cfg)
	if err != nil {
		return err
	}

	total := 0

	for _, locale := range sortedLocales(report) {
		problems := report[locale]
		total += len(problems)

		for _, p := range problems {
			log.Warn().
				Str("locale", locale).
				Str("key", p.Key).
				Str("kind", string(p.Kind)).
				Str("detail", p.Detail).
				Msg("Catalog problem")
		}
	}

	if total > 0 {
		return fmt.Errorf("found %d problems across %d locales", total, len(report))
	}

	log.Info().Msg("All catalogs are clean")

	return nil
}

// validateAll checks every non-base locale concurrently.
func validateAll(tr *translate.Translator, cfg *checkConfig) (map[string][]translate.Problem, error) {
	var (
		mu     sync.Mutex
		report = make(map[string][]translate.Problem)
	)

	var g errgroup.Group

	for _, locale := range cfg.locales() {
		if locale == cfg.BaseLocale {
			continue
		}

		locale := locale

		g.Go(func() error {
			problems, err := tr.ValidateLocale(locale)
			if err != nil {
				return fmt.Errorf("validating %q: %w", locale, err)
			}

			if len(problems) == 0 {
				return nil
			}

			mu.Lock()
			report[locale] = problems
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

func sortedLocales(report map[string][]translate.Problem) []string {
	locales := make([]string, 0, len(report))
	for locale := range report {
		locales = append(locales, locale)
	}

	sort.Strings(locales)

	return locales
}

// consoleWriter returns a zerolog writer with colors only when f is a
// terminal.
func consoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isatty.IsTerminal(f.Fd()),
		TimeFormat: time.DateTime,
	}
}
