package analysis

import (
	"math"
	"sort"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
)

type dimensionAccumulator struct {
	name  string
	order int
	sum   float64
	count int
}

func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

func percentageOf(score float64) float64 {
	return round(score/dimensions.MaxScore*100, 1)
}

// adjustedResponse inverts reverse-scored items on the 1..5 scale
func adjustedResponse(q Question, value int) float64 {
	if q.ReverseScored {
		return float64(6 - value)
	}
	return float64(value)
}

// CalculateScores averages the answered items of each dimension and
// macro-averages the rounded dimension scores into a total. Response values are
// expected in 1..5 and are not validated.
func CalculateScores(questions []Question, responses Responses) DiagnosticScores {
	groups := make([]*dimensionAccumulator, 0, 5)
	byName := make(map[string]*dimensionAccumulator)

	for _, q := range questions {
		acc, ok := byName[q.Dimension]
		if !ok {
			acc = &dimensionAccumulator{name: q.Dimension, order: q.DimensionOrder}
			byName[q.Dimension] = acc
			groups = append(groups, acc)
		}

		value, answered := responses[q.ID]
		if !answered {
			continue
		}
		acc.sum += adjustedResponse(q, value)
		acc.count++
	}

	scores := make([]DimensionScore, 0, len(groups))
	for _, acc := range groups {
		avg := 0.0
		if acc.count > 0 {
			avg = acc.sum / float64(acc.count)
		}
		avg = round(avg, 2)
		scores = append(scores, DimensionScore{
			Dimension:      acc.name,
			DimensionOrder: acc.order,
			Score:          avg,
			MaxScore:       dimensions.MaxScore,
			Percentage:     percentageOf(avg),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].DimensionOrder < scores[j].DimensionOrder
	})

	return AggregateScores(scores)
}

// AggregateScores wraps already computed dimension scores with their total.
// The total is the mean of the (rounded) dimension scores, so every dimension
// weighs the same regardless of its item count.
func AggregateScores(scores []DimensionScore) DiagnosticScores {
	if len(scores) == 0 {
		return DiagnosticScores{DimensionScores: []DimensionScore{}}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s.Score
	}
	total := round(sum/float64(len(scores)), 2)

	return DiagnosticScores{
		DimensionScores: scores,
		TotalScore:      total,
		TotalPercentage: percentageOf(total),
	}
}
