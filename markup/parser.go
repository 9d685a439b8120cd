// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

import "strings"

// lexState is the scanner state of Parse.
type lexState int

const (
	stateText lexState = iota
	stateTag
	statePlaceholder
)

// stackItem is one slot of the parse stack. The same stack holds both
// pending open-tag markers and completed nodes waiting for the innermost
// open tag to close. A marker has node == nil.
type stackItem struct {
	openTag string
	node    Node
}

// Parse scans input left to right into an ordered forest of nodes.
//
// The scanner is deliberately lenient: a stray "<" that never turns into
// a real tag, an unterminated "%..." span, or an unterminated "<..." at
// the end of input all fold back into literal text. Translated content
// relies on this recovery, so it must not be tightened into rejection.
// The only failure mode is a tag that never pairs up, reported as
// *UnbalancedTagsError wrapping ErrUnbalancedTags.
func Parse(input string) ([]Node, error) {
	var (
		result []Node
		stack  []stackItem
		text   strings.Builder // pending literal text
		buf    strings.Builder // pending tag or placeholder name
	)

	st := stateText

	// emit appends n to the current scope: the top of the stack while a
	// tag is open, the top-level result otherwise.
	emit := func(n Node) {
		if len(stack) > 0 {
			stack = append(stack, stackItem{node: n})

			return
		}

		result = append(result, n)
	}

	flushText := func() {
		if text.Len() == 0 {
			return
		}

		emit(&Text{Value: text.String()})
		text.Reset()
	}

	for _, r := range input {
		switch st {
		case stateText:
			switch r {
			case '<':
				st = stateTag
			case '%':
				st = statePlaceholder
			default:
				text.WriteRune(r)
			}

		case stateTag:
			switch r {
			case '>':
				name := buf.String()
				buf.Reset()

				st = stateText

				flushText()

				switch {
				case strings.HasPrefix(name, "/"):
					node, rest, ok := closeTag(stack, strings.TrimSpace(name[1:]))
					if !ok {
						return nil, &UnbalancedTagsError{Input: input}
					}

					stack = rest
					emit(node)
				case strings.HasSuffix(name, "/"):
					emit(&VoidTag{Name: strings.TrimSuffix(name, "/")})
				default:
					stack = append(stack, stackItem{openTag: name})
				}
			case '<':
				// The earlier "<" never opened a real tag. Fold it and
				// the abandoned buffer back into literal text and restart
				// the tag scan at this new "<".
				text.WriteByte('<')
				text.WriteString(buf.String())
				buf.Reset()
			default:
				buf.WriteRune(r)
			}

		case statePlaceholder:
			if r != '%' {
				buf.WriteRune(r)

				continue
			}

			name := buf.String()
			buf.Reset()

			st = stateText

			if name == "" {
				// "%%" escapes a literal percent sign.
				text.WriteByte('%')

				continue
			}

			flushText()
			emit(&Placeholder{Name: name})
		}
	}

	// An unterminated tag or placeholder span degrades to literal text.
	switch st {
	case stateTag:
		text.WriteByte('<')
		text.WriteString(buf.String())
	case statePlaceholder:
		text.WriteByte('%')
		text.WriteString(buf.String())
	case stateText:
	}

	flushText()

	if len(stack) > 0 {
		return nil, &UnbalancedTagsError{Input: input}
	}

	return result, nil
}

// closeTag pops stack down to the open-tag marker matching name and
// builds the Tag node, collecting every popped completed node as a child
// in original order. It fails when the stack runs out before the marker
// is found, or when a different tag is still open in between.
func closeTag(stack []stackItem, name string) (Node, []stackItem, bool) {
	var reversed []Node

	for i := len(stack) - 1; i >= 0; i-- {
		item := stack[i]

		if item.node != nil {
			reversed = append(reversed, item.node)

			continue
		}

		if item.openTag != name {
			// Interleaved tags, e.g. "<a><b></a></b>".
			return nil, nil, false
		}

		var children []Node
		for j := len(reversed) - 1; j >= 0; j-- {
			children = append(children, reversed[j])
		}

		return &Tag{Name: name, Children: children}, stack[:i], true
	}

	return nil, nil, false
}
