// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package markup parses and renders the simplified markup used in
localized message strings.

A message mixes plain text with three kinds of markers:

	Paired tags:    "Read the <link>manual</link>."
	Void tags:      "First line<br/>second line."
	Placeholders:   "Signed in as %username%."

A literal percent sign is written as "%%".

Parse produces an ordered forest of [Node] values. Format substitutes
caller-supplied values into the forest, and StructurallyEqual checks that
a translated message kept the same tags and placeholders as its source.

Malformed placeholder or tag syntax falls back to literal text; the only
way Parse fails is a tag that never pairs up, reported as
[*UnbalancedTagsError].
*/
package markup
