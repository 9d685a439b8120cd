// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package plural

import (
	"errors"
	"fmt"
)

// ErrFormCountMismatch matches any *FormCountMismatchError via errors.Is.
var ErrFormCountMismatch = errors.New("unexpected plural form count")

// FormCountMismatchError reports a pipe-delimited plural string whose
// segment count does not match the locale's grammar. It identifies the
// translation key and the offending string so the broken catalog entry
// can be found during translation QA.
type FormCountMismatchError struct {
	// Key is the translation key the forms string came from.
	Key string

	// Locale is the locale whose rule was applied.
	Locale string

	// Forms is the offending pipe-delimited string.
	Forms string

	// Want is the form count the locale requires; Got is the count found.
	Want int
	Got  int
}

// Error returns the failure description naming the key, locale and string.
func (e *FormCountMismatchError) Error() string {
	return fmt.Sprintf(
		"%s for key %q: locale %q wants %d forms, string %q has %d",
		ErrFormCountMismatch, e.Key, e.Locale, e.Want, e.Forms, e.Got,
	)
}

// Unwrap returns ErrFormCountMismatch for use with errors.Is.
func (e *FormCountMismatchError) Unwrap() error {
	return ErrFormCountMismatch
}
