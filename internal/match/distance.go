package match

// Distance is the optimal string alignment distance between a and b: the
// number of rune insertions, deletions, substitutions and swaps of two
// adjacent runes turning one into the other. Swapped digits ("uint46_t")
// and letters ("stirng") cost a single edit.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	switch {
	case a == b:
		return 0
	case len(ra) == 0:
		return len(rb)
	case len(rb) == 0:
		return len(ra)
	}

	// Three rolling rows: two back, previous, current.
	back := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	row := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(prev[j]+1, row[j-1]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				row[j] = min(row[j], back[j-2]+1)
			}
		}

		back, prev, row = prev, row, back
	}

	return prev[len(rb)]
}

// Similarity maps Distance onto [0, 1], 1 meaning equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}

// Score is the Similarity of the normalized spellings of a and b.
func Score(a, b string) float64 {
	return Similarity(Normalize(a), Normalize(b))
}
