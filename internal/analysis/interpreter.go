package analysis

import "sort"

// Narrative level thresholds. A score equal to a threshold belongs to the
// upper bracket.
const (
	levelMediumThreshold = 2.5
	levelHighThreshold   = 3.5
)

// GetScoreLevel reads a score as baixo (<2.5), medio (<3.5) or alto.
func GetScoreLevel(score float64) ScoreLevel {
	switch {
	case score >= levelHighThreshold:
		return ScoreLevel{Level: "alto", Label: "Bem desenvolvido", Color: "green"}
	case score >= levelMediumThreshold:
		return ScoreLevel{Level: "medio", Label: "Moderado", Color: "amber"}
	default:
		return ScoreLevel{Level: "baixo", Label: "Em desenvolvimento", Color: "red"}
	}
}

// GetScoreLevelBadge is the four-band reading used for badges. Its thresholds
// are independent from GetScoreLevel.
func GetScoreLevelBadge(score float64) ScoreLevel {
	switch {
	case score >= 4:
		return ScoreLevel{Level: "excelente", Label: "Excelente", Color: "emerald"}
	case score >= 3:
		return ScoreLevel{Level: "bom", Label: "Bom", Color: "blue"}
	case score >= 2:
		return ScoreLevel{Level: "regular", Label: "Regular", Color: "amber"}
	default:
		return ScoreLevel{Level: "atencao", Label: "Atenção", Color: "red"}
	}
}

func sortedCopy(scores []DimensionScore, less func(a, b DimensionScore) bool) []DimensionScore {
	cp := append([]DimensionScore(nil), scores...)
	sort.SliceStable(cp, func(i, j int) bool { return less(cp[i], cp[j]) })
	return cp
}

func firstN(scores []DimensionScore, n int) []DimensionScore {
	if len(scores) < n {
		n = len(scores)
	}
	return scores[:n]
}

func ascendingByScore(a, b DimensionScore) bool  { return a.Score < b.Score }
func descendingByScore(a, b DimensionScore) bool { return a.Score > b.Score }

// GetWeakestDimensions returns the two lowest scores, lowest first. The input
// slice is left untouched.
func GetWeakestDimensions(scores []DimensionScore) []DimensionScore {
	return firstN(sortedCopy(scores, ascendingByScore), 2)
}

// GetStrongestDimensions returns the two highest scores, highest first.
func GetStrongestDimensions(scores []DimensionScore) []DimensionScore {
	return firstN(sortedCopy(scores, descendingByScore), 2)
}
