// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/adminfe/translate/markup"
	"codeberg.org/adminfe/translate/plural"
)

var errUnknownLocale = errors.New("no catalog for locale")

// ProblemKind classifies a defect found during catalog validation.
type ProblemKind string

// The defects ValidateLocale reports.
const (
	ProblemMissingKey  ProblemKind = "missing key"
	ProblemExtraKey    ProblemKind = "extra key"
	ProblemSyntax      ProblemKind = "unbalanced tags"
	ProblemStructure   ProblemKind = "structure mismatch"
	ProblemPluralForms ProblemKind = "plural form count"
)

// Problem is one defect in a locale's catalog relative to the base
// catalog.
type Problem struct {
	Key    string
	Kind   ProblemKind
	Detail string
}

// String renders the problem for logs and reports.
func (p Problem) String() string {
	if p.Detail == "" {
		return fmt.Sprintf("%s: %s", p.Key, p.Kind)
	}

	return fmt.Sprintf("%s: %s (%s)", p.Key, p.Kind, p.Detail)
}

// ValidateLocale checks locale's catalog against the base catalog, the
// way translation QA does: every base key must be present, parse
// cleanly, preserve the base message's tags and placeholders, and carry
// the locale's plural form count when the base message is pipe-delimited.
// Keys absent from the base catalog are reported as extras.
//
// Problems are returned in deterministic key order. The error is non-nil
// only when locale itself is unknown or unparseable; content defects are
// problems, not errors.
func (t *Translator) ValidateLocale(locale string) ([]Problem, error) {
	tag, err := language.Parse(cleanLocale(locale))
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}

	canonical := tag.String()

	catalog, ok := t.catalogs[canonical]
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnknownLocale, locale)
	}

	baseCatalog := t.catalogs[t.base.String()]

	var problems []Problem

	for _, key := range sortedKeys(baseCatalog) {
		baseMsg := baseCatalog[key]

		msg, ok := catalog[key]
		if !ok {
			problems = append(problems, Problem{Key: key, Kind: ProblemMissingKey})

			continue
		}

		if strings.Contains(baseMsg, "|") {
			if _, err := plural.Select(canonical, key, msg, 1); err != nil {
				problems = append(problems, Problem{
					Key:    key,
					Kind:   ProblemPluralForms,
					Detail: err.Error(),
				})

				continue
			}

			problems = append(problems, validatePluralForms(key, baseMsg, msg)...)

			continue
		}

		baseNodes, err := markup.Parse(baseMsg)
		if err != nil {
			// A broken base message is a base catalog bug; surface it on
			// every locale's pass rather than skipping silently.
			problems = append(problems, Problem{
				Key:    key,
				Kind:   ProblemSyntax,
				Detail: "base message: " + err.Error(),
			})

			continue
		}

		nodes, err := markup.Parse(msg)
		if err != nil {
			problems = append(problems, Problem{
				Key:    key,
				Kind:   ProblemSyntax,
				Detail: err.Error(),
			})

			continue
		}

		if !markup.StructurallyEqual(baseNodes, nodes) {
			problems = append(problems, Problem{Key: key, Kind: ProblemStructure})
		}
	}

	for _, key := range sortedKeys(catalog) {
		if _, ok := baseCatalog[key]; !ok {
			problems = append(problems, Problem{Key: key, Kind: ProblemExtraKey})
		}
	}

	return problems, nil
}

// validatePluralForms checks the forms of a pipe-delimited message
// separately. Form counts legitimately differ across locales, so forms
// cannot be paired one to one; instead every target form must parse
// cleanly and match the structure of at least one base form.
func validatePluralForms(key, baseMsg, msg string) []Problem {
	var baseForests [][]markup.Node

	for _, form := range strings.Split(baseMsg, "|") {
		nodes, err := markup.Parse(strings.TrimSpace(form))
		if err != nil {
			return []Problem{{
				Key:    key,
				Kind:   ProblemSyntax,
				Detail: "base message: " + err.Error(),
			}}
		}

		baseForests = append(baseForests, nodes)
	}

	var problems []Problem

	for _, form := range strings.Split(msg, "|") {
		nodes, err := markup.Parse(strings.TrimSpace(form))
		if err != nil {
			problems = append(problems, Problem{
				Key:    key,
				Kind:   ProblemSyntax,
				Detail: err.Error(),
			})

			continue
		}

		matched := false

		for _, base := range baseForests {
			if markup.StructurallyEqual(base, nodes) {
				matched = true

				break
			}
		}

		if !matched {
			problems = append(problems, Problem{
				Key:    key,
				Kind:   ProblemStructure,
				Detail: fmt.Sprintf("form %q", strings.TrimSpace(form)),
			})
		}
	}

	return problems
}

// Validate runs ValidateLocale for every registered locale except the
// base, returning problems keyed by canonical locale. Locales without
// problems are omitted.
func (t *Translator) Validate() (map[string][]Problem, error) {
	out := make(map[string][]Problem)

	for _, locale := range sortedKeys(t.catalogs) {
		if locale == t.base.String() {
			continue
		}

		problems, err := t.ValidateLocale(locale)
		if err != nil {
			return nil, err
		}

		if len(problems) > 0 {
			out[locale] = problems
		}
	}

	return out, nil
}
