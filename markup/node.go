// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

// Node is a single element of a parsed message.
//
// The set of implementations is closed: *Text, *Tag, *VoidTag and
// *Placeholder. Consumers switch exhaustively over these four kinds.
type Node interface {
	isNode()
}

// Text is literal message content. It carries no children and is ignored
// by structural comparison.
type Text struct {
	Value string
}

// Tag is a paired <name>...</name> element. Children holds the subtree
// between the opening and closing tag, in source order.
type Tag struct {
	Name     string
	Children []Node
}

// VoidTag is a self-closing <name/> element.
type VoidTag struct {
	Name string
}

// Placeholder is a %name% substitution point.
type Placeholder struct {
	Name string
}

func (*Text) isNode()        {}
func (*Tag) isNode()         {}
func (*VoidTag) isNode()     {}
func (*Placeholder) isNode() {}
