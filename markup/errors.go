// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedTags matches any *UnbalancedTagsError via errors.Is.
	ErrUnbalancedTags = errors.New("unbalanced tags")

	// ErrMissingValue matches any *MissingValueError via errors.Is.
	ErrMissingValue = errors.New("missing value for node")
)

// UnbalancedTagsError reports a message whose tags do not pair up: an
// opening tag was never closed, or a closing tag had no matching opener.
type UnbalancedTagsError struct {
	// Input is the full source message, kept for diagnostics. A broken
	// message is a content bug; the caller needs the original string to
	// find it in the catalog.
	Input string
}

// Error returns the failure description including the offending input.
func (e *UnbalancedTagsError) Error() string {
	return fmt.Sprintf("%s in message %q", ErrUnbalancedTags, e.Input)
}

// Unwrap returns ErrUnbalancedTags for use with errors.Is.
func (e *UnbalancedTagsError) Unwrap() error {
	return ErrUnbalancedTags
}

// MissingValueError reports a tag or placeholder name that has no entry
// in the value map passed to Format. Rendering an empty string instead
// would hide localization bugs, so the omission is surfaced loudly.
type MissingValueError struct {
	// Name is the tag or placeholder name that had no value.
	Name string
}

// Error returns the failure description naming the missing entry.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingValue, e.Name)
}

// Unwrap returns ErrMissingValue for use with errors.Is.
func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}
