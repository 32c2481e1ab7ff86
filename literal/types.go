package literal

import "math"

// Tuple is the value of a parenthesised sequence literal such as (1, 'a').
type Tuple []any

// Set is the value of a set literal such as {1, 2}. Elements are scalars or
// nil. Numerically equal elements (True, 1 and 1.0) are one element; the first
// one inserted is kept.
type Set map[any]struct{}

// Contains reports whether v, or a value numerically equal to it, is an element of s.
func (s Set) Contains(v any) bool {
	if !hashable(v) {
		return false
	}

	_, ok := s[canonicalKey(s, v)]

	return ok
}

// NewSet builds a Set from scalar elements. Non-scalar elements are skipped.
func NewSet(elems ...any) Set {
	set := make(Set, len(elems))

	for _, elem := range elems {
		if hashable(elem) {
			set[canonicalKey(set, elem)] = struct{}{}
		}
	}

	return set
}

func hashable(v any) bool {
	switch v.(type) {
	case nil, bool, int64, float64, string:
		return true
	default:
		return false
	}
}

// Largest magnitude below which every integer is exact as a float64.
const maxExactInt = 1 << 53

// canonicalKey returns the key already in m that equals v numerically, or v.
func canonicalKey[M ~map[any]V, V any](m M, v any) any {
	if _, ok := m[v]; ok {
		return v
	}

	for _, alt := range numericEquivalents(v) {
		if _, ok := m[alt]; ok {
			return alt
		}
	}

	return v
}

// numericEquivalents lists the bool, int64 and float64 values equal to v.
func numericEquivalents(v any) []any {
	var alts []any

	switch x := v.(type) {
	case bool:
		n := int64(0)
		if x {
			n = 1
		}

		alts = append(alts, n, float64(n))
	case int64:
		if x == 0 || x == 1 {
			alts = append(alts, x == 1)
		}

		if x >= -maxExactInt && x <= maxExactInt {
			alts = append(alts, float64(x))
		}
	case float64:
		if x == 0 || x == 1 {
			alts = append(alts, x == 1)
		}

		if x == math.Trunc(x) && math.Abs(x) <= maxExactInt {
			alts = append(alts, int64(x))
		}
	}

	return alts
}
