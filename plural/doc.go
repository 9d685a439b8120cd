// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package plural resolves locale-specific plural categories for cardinal
numbers and picks the matching form out of a pipe-delimited list.

Each supported locale maps to a fixed rule: how many plural forms the
locale distinguishes and which form index applies to a given count. A
translated message stores all forms in one string:

	"%n% minuta|%n% minuty|%n% minut"

and Select returns the segment the locale's rule picks for n. The table
is static data built at package init and never mutated, so every function
here is safe for concurrent use.
*/
package plural
