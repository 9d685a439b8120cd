// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// Values maps tag and placeholder names to their substitutions.
//
// A value may be a string, any Go integer or float type (rendered in its
// decimal string form), or a Func. Every name appearing in the rendered
// forest must be present; see Format.
type Values map[string]any

// Func renders a tag from its already-rendered child content. The result
// may be any value, which lets a UI layer wrap children in something
// other than a string (a clickable element, say) while this package stays
// presentation-agnostic.
type Func func(children string) any

// Format walks nodes depth first, left to right, and substitutes values,
// returning the rendered parts in order. Parts are strings except where
// a Func returned something else.
//
// For a Tag the children are rendered and concatenated first; a Func
// value receives that string, while a plain value replaces it outright
// (the tag acts as a wrapper whose own value supplants its content).
// A name with no entry in values fails with *MissingValueError wrapping
// ErrMissingValue; rendering nothing would hide localization bugs.
func Format(nodes []Node, values Values) ([]any, error) {
	parts := make([]any, 0, len(nodes))

	for _, node := range nodes {
		switch node := node.(type) {
		case *Text:
			parts = append(parts, node.Value)

		case *Tag:
			children, err := FormatString(node.Children, values)
			if err != nil {
				return nil, err
			}

			part, err := substitute(values, node.Name, children)
			if err != nil {
				return nil, err
			}

			parts = append(parts, part)

		case *VoidTag:
			part, err := substitute(values, node.Name, "")
			if err != nil {
				return nil, err
			}

			parts = append(parts, part)

		case *Placeholder:
			part, err := substitute(values, node.Name, "")
			if err != nil {
				return nil, err
			}

			parts = append(parts, part)
		}
	}

	return parts, nil
}

// FormatString is Format with all parts flattened into a single string.
func FormatString(nodes []Node, values Values) (string, error) {
	parts, err := Format(nodes, values)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for _, part := range parts {
		b.WriteString(stringify(part))
	}

	return b.String(), nil
}

// substitute resolves the value for name, invoking a Func with children
// or rendering a plain value to its string form.
func substitute(values Values, name, children string) (any, error) {
	value, ok := values[name]
	if !ok {
		return nil, &MissingValueError{Name: name}
	}

	if fn, ok := value.(Func); ok {
		return fn(children), nil
	}

	return stringify(value), nil
}

// stringify renders a substitution value in its decimal string form.
func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
