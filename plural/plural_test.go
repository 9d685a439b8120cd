// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package plural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   int
	}{
		{locale: "ja", want: 1},
		{locale: "en", want: 2},
		{locale: "fr", want: 2},
		{locale: "ru", want: 3},
		{locale: "cs", want: 3},
		{locale: "sl", want: 4},
		{locale: "cy", want: 4},
		{locale: "ga", want: 5},
		{locale: "ar", want: 6},

		// Normalization and regional fallback.
		{locale: "en-US", want: 2},
		{locale: "pt_BR", want: 2},
		{locale: "zh-CN", want: 1},
		{locale: "sr-Latn", want: 3},

		// Unknown locales use the common two-form rule.
		{locale: "xx", want: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormCount(tt.locale))
		})
	}
}

func TestFormIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		cases  map[int]int
	}{
		{
			locale: "en",
			cases:  map[int]int{0: 1, 1: 0, 2: 1, 11: 1, 100: 1},
		},
		{
			locale: "fr",
			cases:  map[int]int{0: 0, 1: 0, 2: 1, 20: 1},
		},
		{
			locale: "ja",
			cases:  map[int]int{0: 0, 1: 0, 7: 0, 100: 0},
		},
		{
			// Ends in 1 but not 11 / ends in 2-4 but not 12-14 / otherwise.
			locale: "ru",
			cases: map[int]int{
				1:  0,
				21: 0,
				2:  1,
				22: 1,
				24: 1,
				5:  2,
				11: 2,
				12: 2,
				25: 2,
				0:  2,
			},
		},
		{
			locale: "pl",
			cases:  map[int]int{1: 0, 21: 2, 2: 1, 22: 1, 5: 2, 12: 2},
		},
		{
			locale: "cs",
			cases:  map[int]int{1: 0, 2: 1, 4: 1, 5: 2, 0: 2},
		},
		{
			locale: "lv",
			cases:  map[int]int{0: 2, 1: 0, 21: 0, 11: 1, 5: 1},
		},
		{
			locale: "ga",
			cases:  map[int]int{1: 0, 2: 1, 3: 2, 6: 2, 7: 3, 10: 3, 11: 4},
		},
		{
			locale: "ar",
			cases:  map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 10: 3, 11: 4, 99: 4, 100: 5},
		},
		{
			locale: "sl",
			cases:  map[int]int{1: 0, 101: 0, 2: 1, 102: 1, 3: 2, 4: 2, 5: 3},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()

			count := FormCount(tt.locale)
			for n, want := range tt.cases {
				got := FormIndex(tt.locale, n)
				assert.Equal(t, want, got, "locale %s n=%d", tt.locale, n)
				assert.Less(t, got, count, "index out of range for n=%d", n)
			}
		})
	}
}

func TestFormIndexNegative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormIndex("ru", 2), FormIndex("ru", -2))
	assert.Equal(t, FormIndex("en", 1), FormIndex("en", -1))
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		forms  string
		n      int
		want   string
	}{
		{
			name:   "english singular",
			locale: "en",
			forms:  "%n% item|%n% items",
			n:      1,
			want:   "%n% item",
		},
		{
			name:   "english plural",
			locale: "en",
			forms:  "%n% item|%n% items",
			n:      3,
			want:   "%n% items",
		},
		{
			name:   "russian few",
			locale: "ru",
			forms:  "минута|минуты|минут",
			n:      22,
			want:   "минуты",
		},
		{
			name:   "russian many",
			locale: "ru",
			forms:  "минута|минуты|минут",
			n:      11,
			want:   "минут",
		},
		{
			name:   "segments are trimmed",
			locale: "en",
			forms:  " one | many ",
			n:      5,
			want:   "many",
		},
		{
			name:   "no plural distinction",
			locale: "ja",
			forms:  "アイテム",
			n:      42,
			want:   "アイテム",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Select(tt.locale, "test_key", tt.forms, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectFormCountMismatch(t *testing.T) {
	t.Parallel()

	// Russian wants three forms; two are given.
	_, err := Select("ru", "minutes_count", "минута|минуты", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormCountMismatch)

	var fcErr *FormCountMismatchError
	require.ErrorAs(t, err, &fcErr)
	assert.Equal(t, "minutes_count", fcErr.Key)
	assert.Equal(t, "ru", fcErr.Locale)
	assert.Equal(t, 3, fcErr.Want)
	assert.Equal(t, 2, fcErr.Got)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, Supported("en"))
	assert.True(t, Supported("pt-BR"))
	assert.True(t, Supported("zh_TW"))
	assert.False(t, Supported("xx"))
}
