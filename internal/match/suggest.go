package match

import "sort"

// SuggestThreshold is the minimum normalized similarity for a name to be
// offered as a near-miss suggestion.
const SuggestThreshold = 0.5

// Suggest returns up to max candidate names similar to input, best first,
// ties broken alphabetically. Comparison is case- and separator-insensitive,
// so a manifest's "title_like" finds the field "TitleLike".
func Suggest(input string, candidates []string, max int) []string {
	if max <= 0 || len(candidates) == 0 {
		return nil
	}

	norm := NormalizeIdent(input)

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored
	for _, c := range candidates {
		score := Similarity(norm, NormalizeIdent(c))
		if score >= SuggestThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}

	return out
}
