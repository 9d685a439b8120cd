// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

// StructurallyEqual reports whether base and target carry the same tags
// and placeholders with the same nesting. Literal text is never compared,
// so a translation with different wording still matches.
//
// Sibling order is not significant at any level; translators may reorder
// inline markup. Dropping, renaming or re-nesting a tag or placeholder
// breaks equality.
func StructurallyEqual(base, target []Node) bool {
	baseShape := dropText(base)
	targetShape := dropText(target)

	if len(baseShape) != len(targetShape) {
		return false
	}

	for _, want := range baseShape {
		found, ok := findMatch(targetShape, want)
		if !ok {
			return false
		}

		if tag, ok := want.(*Tag); ok {
			if !StructurallyEqual(tag.Children, found.(*Tag).Children) {
				return false
			}
		}
	}

	return true
}

// dropText filters nodes down to the structural kinds.
func dropText(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))

	for _, n := range nodes {
		if _, ok := n.(*Text); ok {
			continue
		}

		out = append(out, n)
	}

	return out
}

// findMatch returns the first node in nodes with the same kind and name
// as want.
func findMatch(nodes []Node, want Node) (Node, bool) {
	for _, n := range nodes {
		if sameShape(n, want) {
			return n, true
		}
	}

	return nil, false
}

// sameShape reports whether a and b have the same kind and name.
func sameShape(a, b Node) bool {
	switch a := a.(type) {
	case *Tag:
		other, ok := b.(*Tag)

		return ok && a.Name == other.Name
	case *VoidTag:
		other, ok := b.(*VoidTag)

		return ok && a.Name == other.Name
	case *Placeholder:
		other, ok := b.(*Placeholder)

		return ok && a.Name == other.Name
	case *Text:
		_, ok := b.(*Text)

		return ok
	}

	return false
}
