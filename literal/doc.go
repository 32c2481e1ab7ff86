// Package literal converts the text of a catalog entry into a typed Go value.
//
// The grammar is a small, fixed subset of Python literal syntax:
//
//	True, False            -> bool
//	123, -0x1f, 1_000      -> int64
//	1.5, .5, 1e-3          -> float64
//	'a', "a", '''a''', """a""", r'\d' -> string
//
// Strict mode (the default) accepts exactly those four shapes. Permissive mode
// additionally accepts None, lists, tuples, sets and dicts of literals, and
// turns any text that does not parse into the raw trimmed string.
//
// Parsing is done by a hand-written recursive-descent parser. Nothing is ever
// evaluated.
package literal
