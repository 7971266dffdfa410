package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Unique returns s without repeated elements, keeping first occurrences in
// order. The result shares the backing array of s.
func Unique[S ~[]E, E comparable](s S) S {
	if len(s) < 2 {
		return s
	}

	seen := make(map[E]bool, len(s))
	out := s[:0]

	for _, e := range s {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}

	return out
}
