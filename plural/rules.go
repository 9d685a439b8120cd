// Copyright 2024 - 2026, the AdminFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package plural

// Rule is one locale's plural grammar: the number of distinct forms and
// the arithmetic picking a form index for a cardinal number.
type Rule struct {
	// Forms is how many plural forms the locale distinguishes.
	Forms int

	// Index maps a non-negative cardinal number to a form index in
	// [0, Forms).
	Index func(n int) int
}

// The rule families below cover every supported locale. Names follow the
// most prominent language of each family.

// ruleNone: languages with no plural distinction (Japanese, Korean,
// Chinese, Vietnamese, Thai, ...).
var ruleNone = Rule{
	Forms: 1,
	Index: func(int) int { return 0 },
}

// ruleDefault: singular for exactly one (English, German, Spanish,
// Greek, Hebrew, ...). Also the fallback for unknown locales.
var ruleDefault = Rule{
	Forms: 2,
	Index: func(n int) int {
		if n == 1 {
			return 0
		}

		return 1
	},
}

// ruleFrench: zero and one share the singular (French, Brazilian
// Portuguese, Hindi, Armenian, ...).
var ruleFrench = Rule{
	Forms: 2,
	Index: func(n int) int {
		if n > 1 {
			return 1
		}

		return 0
	},
}

// ruleIcelandic: singular for numbers ending in 1 except 11.
var ruleIcelandic = Rule{
	Forms: 2,
	Index: func(n int) int {
		if n%10 == 1 && n%100 != 11 {
			return 0
		}

		return 1
	},
}

// ruleEastSlavic: the four-branch digit-class grammar shared by Russian,
// Ukrainian, Belarusian, Serbian, Croatian and Bosnian, folded to three
// forms for integer counts: ends in 1 (but not 11), ends in 2-4 (but not
// 12-14), everything else.
var ruleEastSlavic = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n%10 == 1 && n%100 != 11:
			return 0
		case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
			return 1
		default:
			return 2
		}
	},
}

// rulePolish: like East Slavic but exactly 1 alone takes the singular.
var rulePolish = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
			return 1
		default:
			return 2
		}
	},
}

// ruleCzech: 1, 2-4, other (Czech, Slovak).
var ruleCzech = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	},
}

// ruleLithuanian: teens take the plural regardless of final digit.
var ruleLithuanian = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n%10 == 1 && (n%100 < 11 || n%100 > 19):
			return 0
		case n%10 >= 2 && (n%100 < 11 || n%100 > 19):
			return 1
		default:
			return 2
		}
	},
}

// ruleLatvian: a dedicated form for exactly zero.
var ruleLatvian = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n%10 == 1 && n%100 != 11:
			return 0
		case n != 0:
			return 1
		default:
			return 2
		}
	},
}

// ruleRomanian: 1, then 0 and 1-19 ranges mod 100, then other.
var ruleRomanian = Rule{
	Forms: 3,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 0 || (n%100 >= 1 && n%100 <= 19):
			return 1
		default:
			return 2
		}
	},
}

// ruleSlovenian: grammar keyed on n mod 100 for 1, 2 and 3-4.
var ruleSlovenian = Rule{
	Forms: 4,
	Index: func(n int) int {
		switch {
		case n%100 == 1:
			return 0
		case n%100 == 2:
			return 1
		case n%100 == 3 || n%100 == 4:
			return 2
		default:
			return 3
		}
	},
}

// ruleWelsh: distinct forms for 1, 2, and the irregular 8 and 11.
var ruleWelsh = Rule{
	Forms: 4,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 2:
			return 1
		case n != 8 && n != 11:
			return 2
		default:
			return 3
		}
	},
}

// ruleGaelic: Scottish Gaelic pairs 1 with 11 and 2 with 12.
var ruleGaelic = Rule{
	Forms: 4,
	Index: func(n int) int {
		switch {
		case n == 1 || n == 11:
			return 0
		case n == 2 || n == 12:
			return 1
		case n > 2 && n < 20:
			return 2
		default:
			return 3
		}
	},
}

// ruleMaltese: singular, small ranges mod 100, teens, other.
var ruleMaltese = Rule{
	Forms: 4,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 0 || (n%100 >= 2 && n%100 <= 10):
			return 1
		case n%100 >= 11 && n%100 <= 19:
			return 2
		default:
			return 3
		}
	},
}

// ruleIrish: distinct forms for 1, 2, 3-6 and 7-10.
var ruleIrish = Rule{
	Forms: 5,
	Index: func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 2:
			return 1
		case n >= 3 && n <= 6:
			return 2
		case n >= 7 && n <= 10:
			return 3
		default:
			return 4
		}
	},
}

// ruleArabic: the six-branch grammar keyed on n mod 100 ranges.
var ruleArabic = Rule{
	Forms: 6,
	Index: func(n int) int {
		switch {
		case n == 0:
			return 0
		case n == 1:
			return 1
		case n == 2:
			return 2
		case n%100 >= 3 && n%100 <= 10:
			return 3
		case n%100 >= 11 && n%100 <= 99:
			return 4
		default:
			return 5
		}
	},
}

// ruleMacedonian: singular for numbers ending in 1 except 11.
var ruleMacedonian = Rule{
	Forms: 2,
	Index: func(n int) int {
		if n%10 == 1 && n%100 != 11 {
			return 0
		}

		return 1
	},
}
