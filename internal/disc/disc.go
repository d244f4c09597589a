// Package disc scores the DISC behavioral profile: four dimensions D, I, S and
// C computed like the main instrument, then read as a two-letter profile.
package disc

import (
	"math"
	"sort"
	"strings"
)

// Dimension keys, in output order
const (
	Dominance     = "D"
	Influence     = "I"
	Steadiness    = "S"
	Conscientious = "C"
	maxScore      = 5.0
)

var order = []string{Dominance, Influence, Steadiness, Conscientious}

var displayNames = map[string]string{
	Dominance:     "Dominância",
	Influence:     "Influência",
	Steadiness:    "Estabilidade",
	Conscientious: "Conformidade",
}

var slugKeys = map[string]string{
	"dominancia":        Dominance,
	"dominância":        Dominance,
	"dominance":         Dominance,
	"influencia":        Influence,
	"influência":        Influence,
	"influence":         Influence,
	"estabilidade":      Steadiness,
	"steadiness":        Steadiness,
	"conformidade":      Conscientious,
	"cautela":           Conscientious,
	"conscienciosidade": Conscientious,
	"conscientiousness": Conscientious,
	"compliance":        Conscientious,
}

// Question is one DISC item
type Question struct {
	ID            string `json:"id"`
	Dimension     string `json:"dimension"`
	QuestionOrder int    `json:"question_order"`
	Text          string `json:"text"`
	ReverseScored bool   `json:"reverse_scored"`
}

type DimensionScore struct {
	Dimension  string  `json:"dimension"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

type Profile struct {
	Code        string `json:"code"`
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Result struct {
	Scores  []DimensionScore `json:"scores"`
	Profile Profile          `json:"profile"`
}

// NormalizeKey maps a DISC dimension identifier to D, I, S or C. Direct
// letters win, then known slugs, then substring heuristics. Unknown input is
// returned as is.
func NormalizeKey(dimension string) string {
	key := strings.TrimSpace(dimension)
	upper := strings.ToUpper(key)
	if _, ok := displayNames[upper]; ok {
		return upper
	}

	lower := strings.ToLower(key)
	if k, ok := slugKeys[lower]; ok {
		return k
	}

	switch {
	case strings.Contains(lower, "domin"):
		return Dominance
	case strings.Contains(lower, "influen"):
		return Influence
	case strings.Contains(lower, "estabil"):
		return Steadiness
	case strings.Contains(lower, "conform"), strings.Contains(lower, "cautela"), strings.Contains(lower, "conscien"):
		return Conscientious
	}
	return dimension
}

// DisplayName returns the Portuguese name of a DISC key, or the key itself.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	return key
}

func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// CalculateScores scores the four dimensions in D, I, S, C order and derives
// the profile. Items whose dimension does not normalize to a DISC key are
// ignored. Responses are expected in 1..5.
func CalculateScores(questions []Question, responses map[string]int) Result {
	sums := make(map[string]float64, 4)
	counts := make(map[string]int, 4)

	for _, q := range questions {
		value, ok := responses[q.ID]
		if !ok {
			continue
		}
		key := NormalizeKey(q.Dimension)
		adjusted := float64(value)
		if q.ReverseScored {
			adjusted = float64(6 - value)
		}
		sums[key] += adjusted
		counts[key]++
	}

	scores := make([]DimensionScore, 0, len(order))
	for _, key := range order {
		avg := 0.0
		if counts[key] > 0 {
			avg = sums[key] / float64(counts[key])
		}
		avg = round(avg, 2)
		scores = append(scores, DimensionScore{
			Dimension:  key,
			Name:       displayNames[key],
			Score:      avg,
			MaxScore:   maxScore,
			Percentage: round(avg/maxScore*100, 1),
		})
	}

	return Result{Scores: scores, Profile: DeriveProfile(scores)}
}

// DeriveProfile takes the two highest scores as primary and secondary and
// looks the pair up in the profile table.
func DeriveProfile(scores []DimensionScore) Profile {
	if len(scores) == 0 {
		return Profile{}
	}

	sorted := append([]DimensionScore(nil), scores...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	primary := sorted[0].Dimension
	secondary := primary
	if len(sorted) > 1 {
		secondary = sorted[1].Dimension
	}
	return LookupProfile(primary, secondary)
}

// LookupProfile finds the descriptor for primary+secondary. A missing pair
// falls back to the doubled primary, then to a generic descriptor.
func LookupProfile(primary, secondary string) Profile {
	code := primary + secondary
	if p, ok := profiles[code]; ok {
		return p.profile(code, primary, secondary)
	}
	if p, ok := profiles[primary+primary]; ok {
		return p.profile(primary+primary, primary, secondary)
	}
	return Profile{
		Code:        code,
		Primary:     primary,
		Secondary:   secondary,
		Label:       "Perfil " + DisplayName(primary),
		Description: "Perfil comportamental com predominância de " + DisplayName(primary) + ", combinando características das demais dimensões de forma equilibrada.",
	}
}
