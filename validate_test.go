// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLocale(t *testing.T) {
	t.Parallel()

	tr, err := New("en", map[string]Catalog{
		"en": {
			"ok":          "see <a>docs</a> at %url%",
			"dropped_tag": "read the <b>manual</b>",
			"missing":     "not translated yet",
			"broken":      "press <b>save</b>",
			"count":       "%n% item|%n% items",
			"count_bad":   "%n% day|%n% days",
		},
		"ru": {
			"ok":          "%url% — <a>документация</a>",
			"dropped_tag": "читайте руководство",
			"broken":      "нажмите <b>сохранить",
			"count":       "%n% штука|%n% штуки|%n% штук",
			"count_bad":   "%n% день|%n% дней",
			"obsolete":    "no longer in the base catalog",
		},
	})
	require.NoError(t, err)

	problems, err := tr.ValidateLocale("ru")
	require.NoError(t, err)

	byKey := make(map[string]Problem, len(problems))
	for _, p := range problems {
		byKey[p.Key] = p
	}

	require.Len(t, problems, 5)
	assert.Equal(t, ProblemStructure, byKey["dropped_tag"].Kind)
	assert.Equal(t, ProblemMissingKey, byKey["missing"].Kind)
	assert.Equal(t, ProblemSyntax, byKey["broken"].Kind)
	assert.Equal(t, ProblemPluralForms, byKey["count_bad"].Kind)
	assert.Equal(t, ProblemExtraKey, byKey["obsolete"].Kind)

	// "ok" translates with reordered siblings, "count" carries the right
	// Russian form count; neither is a problem.
	assert.NotContains(t, byKey, "ok")
	assert.NotContains(t, byKey, "count")
}

func TestValidateLocaleUnknown(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	_, err := tr.ValidateLocale("de")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownLocale)
}

// TestValidatePluralFormStructure checks that each form of a plural
// message is validated separately, since form counts legitimately differ
// across locales.
func TestValidatePluralFormStructure(t *testing.T) {
	t.Parallel()

	tr, err := New("en", map[string]Catalog{
		"en": {"count": "%n% item|%n% items"},
		"ru": {"count": "%n% штука|%n% штуки|штук"},
	})
	require.NoError(t, err)

	// The third Russian form dropped the %n% placeholder.
	problems, err := tr.ValidateLocale("ru")
	require.NoError(t, err)

	require.Len(t, problems, 1)
	assert.Equal(t, "count", problems[0].Key)
	assert.Equal(t, ProblemStructure, problems[0].Kind)
	assert.Contains(t, problems[0].Detail, "штук")
}

func TestValidateAllLocales(t *testing.T) {
	t.Parallel()

	tr, err := New("en", map[string]Catalog{
		"en": {"a": "<b>x</b>", "b": "plain"},
		"fr": {"a": "<b>y</b>", "b": "clair"},
		"de": {"a": "kein tag", "b": "schlicht"},
	})
	require.NoError(t, err)

	all, err := tr.Validate()
	require.NoError(t, err)

	// French is clean and therefore omitted; German dropped a tag.
	require.Len(t, all, 1)
	require.Len(t, all["de"], 1)
	assert.Equal(t, "a", all["de"][0].Key)
	assert.Equal(t, ProblemStructure, all["de"][0].Kind)
}
