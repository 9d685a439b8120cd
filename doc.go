// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package translate renders localized messages for the dashboard from
caller-supplied message catalogs.

A catalog maps translation keys to messages written in the simplified
markup grammar of subpackage markup; plural messages carry all forms in
one pipe-delimited string resolved by subpackage plural.

# Quick start

Build a Translator once at startup and pass it around:

	tr, err := translate.New("en", map[string]translate.Catalog{
		"en": {"greeting": "hi <b>%name%</b>!"},
		"fr": {"greeting": "salut <b>%name%</b> !"},
	})

Resolve messages with the request's locale carried in the context:

	ctx = translate.WithTag(ctx, language.French)
	s, err := tr.Message(ctx, "greeting", markup.Values{
		"name": user.Name,
		"b":    markup.Func(func(children string) any { return "<em>" + children + "</em>" }),
	})

Counted messages pick the locale's plural form first:

	s, err = tr.MessageN(ctx, "files_count", n, markup.Values{"n": n})

# Missing translations

A key missing from the resolved locale falls back to the base catalog.
With WithStrictMissing the fallback is logged once per locale and key and
the returned text is visibly wrapped as "⟦...⟧" so it cannot ship
unnoticed.

# Translation QA

ValidateLocale compares a locale's catalog against the base: present
keys, intact tag/placeholder structure, and correct plural form counts.
The transcheck command under cmd/ runs the same checks over JSON catalog
files.
*/
package translate
