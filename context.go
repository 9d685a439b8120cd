// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translate

import (
	"context"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

// WithTag stores t in ctx and returns a derived context that carries it.
//
// The returned context should be passed to downstream code that renders
// messages. Passing the zero value of [language.Tag] clears any existing
// value.
//
// The ctx must not be nil.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or the zero value of
// [language.Tag] if none is present. A Translator treats the zero value
// as a request for its base locale. The ctx may be nil.
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, _ := ctx.Value(tagKey).(language.Tag); t != (language.Tag{}) {
			return t
		}
	}

	return language.Tag{}
}
