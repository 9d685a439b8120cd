// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translate

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"codeberg.org/adminfe/translate/markup"
	"codeberg.org/adminfe/translate/plural"
)

var errNoBaseCatalog = errors.New("no catalog for base locale")

// Catalog is one locale's message catalog: translation key → message in
// the simplified markup grammar. A plural message carries all of its
// forms in one pipe-delimited string.
type Catalog map[string]string

// Translator resolves and renders localized messages for a fixed set of
// catalogs. It is immutable after New returns, apart from internal log
// deduplication state, and safe for concurrent use.
type Translator struct {
	base     language.Tag
	catalogs map[string]Catalog // canonical tag string → catalog
	tags     []language.Tag
	matcher  language.Matcher
	strict   bool
	logger   zerolog.Logger

	// missingOnce deduplicates strict-mode warnings for missing keys.
	// The key is locale+"\x00"+key.
	missingOnce sync.Map
}

// Option configures a Translator during New.
type Option func(*Translator)

// WithStrictMissing makes missing translations impossible to miss:
// lookups that fall back to the base catalog are logged once per
// (locale, key) pair and the rendered text is wrapped in "⟦...⟧".
func WithStrictMissing() Option {
	return func(t *Translator) { t.strict = true }
}

// WithLogger replaces the logger used for strict-mode warnings. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Translator) { t.logger = logger }
}

// New builds a Translator over catalogs keyed by locale identifier.
// Identifiers may use hyphens or underscores, for example "pt-BR" or
// "pt_BR", and are normalised to canonical BCP 47 tags for matching.
// The base locale acts as the fallback for every lookup and must have a
// catalog of its own.
func New(base string, catalogs map[string]Catalog, opts ...Option) (*Translator, error) {
	baseTag, err := language.Parse(cleanLocale(base))
	if err != nil {
		return nil, fmt.Errorf("base locale %q: %w", base, err)
	}

	t := &Translator{
		base:     baseTag,
		catalogs: make(map[string]Catalog, len(catalogs)),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	var tags []language.Tag

	for _, locale := range sortedKeys(catalogs) {
		tag, err := language.Parse(cleanLocale(locale))
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}

		t.catalogs[tag.String()] = catalogs[locale]

		if tag != baseTag {
			tags = append(tags, tag)
		}
	}

	if _, ok := t.catalogs[baseTag.String()]; !ok {
		return nil, fmt.Errorf("%w %q", errNoBaseCatalog, base)
	}

	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tags)+1)
	all = append(all, baseTag)
	all = append(all, tags...)

	t.tags = all
	t.matcher = language.NewMatcher(all)

	return t, nil
}

// Languages returns the registered locales as language tags, base locale
// first, the rest sorted by canonical tag string. The returned slice is
// a copy and safe to retain.
func (t *Translator) Languages() []language.Tag {
	out := make([]language.Tag, len(t.tags))
	copy(out, t.tags)

	return out
}

// Message renders the message for key in the locale carried by ctx,
// substituting values into its tags and placeholders.
//
// A key absent from the resolved locale falls back to the base catalog;
// a key unknown even there renders as the key itself. Rendering fails
// with the markup package's errors when the message is malformed or a
// value is missing.
func (t *Translator) Message(ctx context.Context, key string, values markup.Values) (string, error) {
	tag := t.resolve(ctx)

	msg, direct, ok := t.lookup(tag, key)
	if !ok {
		t.logMissingOnce(tag, key)

		if t.strict {
			return "⟦" + key + "⟧", nil
		}

		return key, nil
	}

	out, err := t.render(key, msg, values)
	if err != nil {
		return "", err
	}

	if !direct && !t.isBase(tag) {
		t.logMissingOnce(tag, key)

		if t.strict {
			return "⟦" + out + "⟧", nil
		}
	}

	return out, nil
}

// MessageN renders the counted message for key, picking the plural form
// that applies to n before substituting values. The form count follows
// the catalog the message actually came from, so a base-catalog fallback
// is validated against the base locale's grammar.
func (t *Translator) MessageN(ctx context.Context, key string, n int, values markup.Values) (string, error) {
	tag := t.resolve(ctx)

	msg, direct, ok := t.lookup(tag, key)
	if !ok {
		t.logMissingOnce(tag, key)

		if t.strict {
			return "⟦" + key + "⟧", nil
		}

		return key, nil
	}

	locale := tag.String()
	if !direct {
		locale = t.base.String()
	}

	form, err := plural.Select(locale, key, msg, n)
	if err != nil {
		return "", err
	}

	out, err := t.render(key, form, values)
	if err != nil {
		return "", err
	}

	if !direct && !t.isBase(tag) {
		t.logMissingOnce(tag, key)

		if t.strict {
			return "⟦" + out + "⟧", nil
		}
	}

	return out, nil
}

// MessageParts is Message returning the rendered parts in order instead
// of one flattened string, for callers whose Func values produce
// non-string elements. Strict-mode wrapping does not apply to parts.
func (t *Translator) MessageParts(ctx context.Context, key string, values markup.Values) ([]any, error) {
	tag := t.resolve(ctx)

	msg, direct, ok := t.lookup(tag, key)
	if !ok {
		t.logMissingOnce(tag, key)

		return []any{key}, nil
	}

	if !direct && !t.isBase(tag) {
		t.logMissingOnce(tag, key)
	}

	nodes, err := markup.Parse(msg)
	if err != nil {
		return nil, fmt.Errorf("message %q: %w", key, err)
	}

	parts, err := markup.Format(nodes, values)
	if err != nil {
		return nil, fmt.Errorf("message %q: %w", key, err)
	}

	return parts, nil
}

// resolve matches the context tag against the registered locales,
// defaulting to the base locale. Resolution goes through the matcher's
// index because the matched tag itself may carry the request's region
// ("ru-BY") and would no longer key into the catalog map.
func (t *Translator) resolve(ctx context.Context) language.Tag {
	want := TagFrom(ctx)
	if want == (language.Tag{}) {
		return t.base
	}

	_, index := language.MatchStrings(t.matcher, want.String())

	return t.tags[index]
}

// lookup returns the message for key in the catalog for tag, falling
// back to the base catalog. direct reports whether the resolved locale
// itself had the key; ok whether any catalog did.
func (t *Translator) lookup(tag language.Tag, key string) (msg string, direct, ok bool) {
	if catalog, exists := t.catalogs[tag.String()]; exists {
		if m, has := catalog[key]; has {
			return m, true, true
		}
	}

	if m, has := t.catalogs[t.base.String()][key]; has {
		return m, false, true
	}

	return "", false, false
}

// render parses msg and substitutes values, annotating failures with the
// translation key.
func (t *Translator) render(key, msg string, values markup.Values) (string, error) {
	nodes, err := markup.Parse(msg)
	if err != nil {
		return "", fmt.Errorf("message %q: %w", key, err)
	}

	out, err := markup.FormatString(nodes, values)
	if err != nil {
		return "", fmt.Errorf("message %q: %w", key, err)
	}

	return out, nil
}

func (t *Translator) isBase(tag language.Tag) bool {
	return tag.String() == t.base.String()
}

// logMissingOnce logs a missing translation warning once per
// (locale, key) pair. Only strict mode logs; silent fallback is the
// default behavior.
func (t *Translator) logMissingOnce(tag language.Tag, key string) {
	if !t.strict {
		return
	}

	id := tag.String() + "\x00" + key
	if _, loaded := t.missingOnce.LoadOrStore(id, struct{}{}); !loaded {
		t.logger.Warn().
			Str("locale", tag.String()).
			Str("key", key).
			Msg("Missing translation")
	}
}

// cleanLocale accepts both underscore and hyphen separators.
func cleanLocale(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
