// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package plural

import (
	"strings"

	"golang.org/x/text/language"
)

// rules maps lowercase canonical BCP 47 tags to their plural rule.
// Regional variants that share the base language's grammar resolve
// through the base entry; only regions with a different grammar, like
// pt-BR, get their own key.
var rules = map[string]Rule{
	// No plural distinction.
	"bo": ruleNone,
	"dz": ruleNone,
	"id": ruleNone,
	"ja": ruleNone,
	"jv": ruleNone,
	"ka": ruleNone,
	"km": ruleNone,
	"ko": ruleNone,
	"lo": ruleNone,
	"ms": ruleNone,
	"my": ruleNone,
	"su": ruleNone,
	"th": ruleNone,
	"vi": ruleNone,
	"zh": ruleNone,

	// Singular for exactly one.
	"af": ruleDefault,
	"az": ruleDefault,
	"bg": ruleDefault,
	"bn": ruleDefault,
	"ca": ruleDefault,
	"da": ruleDefault,
	"de": ruleDefault,
	"el": ruleDefault,
	"en": ruleDefault,
	"eo": ruleDefault,
	"es": ruleDefault,
	"et": ruleDefault,
	"eu": ruleDefault,
	"fi": ruleDefault,
	"fo": ruleDefault,
	"gl": ruleDefault,
	"he": ruleDefault,
	"hu": ruleDefault,
	"it": ruleDefault,
	"kk": ruleDefault,
	"kn": ruleDefault,
	"ky": ruleDefault,
	"ml": ruleDefault,
	"mn": ruleDefault,
	"mr": ruleDefault,
	"nb": ruleDefault,
	"ne": ruleDefault,
	"nl": ruleDefault,
	"nn": ruleDefault,
	"no": ruleDefault,
	"pt": ruleDefault,
	"sq": ruleDefault,
	"sv": ruleDefault,
	"sw": ruleDefault,
	"ta": ruleDefault,
	"te": ruleDefault,
	"tr": ruleDefault,
	"ur": ruleDefault,
	"uz": ruleDefault,

	// Zero and one share the singular.
	"am":    ruleFrench,
	"fa":    ruleFrench,
	"fil":   ruleFrench,
	"fr":    ruleFrench,
	"hi":    ruleFrench,
	"hy":    ruleFrench,
	"oc":    ruleFrench,
	"pt-br": ruleFrench,
	"tl":    ruleFrench,

	// Ends in 1 except 11.
	"is": ruleIcelandic,
	"mk": ruleMacedonian,

	// Slavic digit classes.
	"be": ruleEastSlavic,
	"bs": ruleEastSlavic,
	"hr": ruleEastSlavic,
	"ru": ruleEastSlavic,
	"sr": ruleEastSlavic,
	"uk": ruleEastSlavic,

	"pl": rulePolish,

	"cs": ruleCzech,
	"sk": ruleCzech,

	"lt": ruleLithuanian,
	"lv": ruleLatvian,
	"ro": ruleRomanian,
	"sl": ruleSlovenian,

	// Celtic and Maltese.
	"cy": ruleWelsh,
	"ga": ruleIrish,
	"gd": ruleGaelic,
	"mt": ruleMaltese,

	"ar": ruleArabic,
}

// Supported reports whether locale has its own entry in the rule table,
// directly or through its base language.
func Supported(locale string) bool {
	_, ok := find(locale)

	return ok
}

// FormCount returns the number of plural forms locale distinguishes.
// Unknown locales fall back to the common two-form rule.
func FormCount(locale string) int {
	return lookup(locale).Forms
}

// FormIndex returns the plural form index for cardinal n, in
// [0, FormCount(locale)). Negative counts use the grammar of their
// absolute value.
func FormIndex(locale string, n int) int {
	if n < 0 {
		n = -n
	}

	return lookup(locale).Index(n)
}

// Select picks the form of the pipe-delimited forms string that applies
// to n under locale. Segments are trimmed of surrounding whitespace.
//
// The segment count must equal FormCount(locale); otherwise Select fails
// with *FormCountMismatchError naming key, the translation key the forms
// string came from, for diagnostics.
func Select(locale, key, forms string, n int) (string, error) {
	rule := lookup(locale)

	segments := strings.Split(forms, "|")
	if len(segments) != rule.Forms {
		return "", &FormCountMismatchError{
			Key:    key,
			Locale: locale,
			Forms:  forms,
			Want:   rule.Forms,
			Got:    len(segments),
		}
	}

	if n < 0 {
		n = -n
	}

	return strings.TrimSpace(segments[rule.Index(n)]), nil
}

// lookup resolves locale to its rule, falling back to the common
// two-form rule for locales outside the table.
func lookup(locale string) Rule {
	if rule, ok := find(locale); ok {
		return rule
	}

	return ruleDefault
}

// find normalizes locale and tries the full tag first, then its base
// language, so "pt_BR", "pt-BR" and "pt-br" all land on the pt-br entry
// while "en-GB" resolves through "en".
func find(locale string) (Rule, bool) {
	norm := normalize(locale)

	if rule, ok := rules[norm]; ok {
		return rule, true
	}

	if i := strings.IndexByte(norm, '-'); i > 0 {
		if rule, ok := rules[norm[:i]]; ok {
			return rule, true
		}
	}

	return Rule{}, false
}

// normalize lowercases locale as a canonical BCP 47 string. Underscore
// separators are tolerated; unparseable identifiers are lowercased as is.
func normalize(locale string) string {
	cleaned := strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(cleaned)
	if err != nil {
		return strings.ToLower(cleaned)
	}

	return strings.ToLower(tag.String())
}
