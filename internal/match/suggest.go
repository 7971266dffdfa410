package match

import "sort"

// DefaultMinScore is the similarity below which a name is not worth suggesting.
const DefaultMinScore = 0.6

// DefaultMaxSuggestions bounds the number of names returned by Suggest.
const DefaultMaxSuggestions = 3

// Suggest returns up to limit candidates whose similarity to name reaches
// minScore, best first. Ties are broken alphabetically so the output is
// deterministic.
func Suggest(name string, candidates []string, minScore float64, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if s := Score(name, c); s >= minScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, r.name)
	}

	return res
}
