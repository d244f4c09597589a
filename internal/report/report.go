// Package report assembles a full diagnostic report from raw responses or
// from stored dimension scores. It is the boundary where externally sourced
// dimension names are normalized and, when unknown, flagged.
package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
)

const (
	SourceResponses = "responses"
	SourceRecords   = "records"
)

// Observer receives pipeline counters. *monitoring.Metrics implements it.
type Observer interface {
	IncReportBuilt(source string)
	IncUnresolvedDimension(source string)
}

// DimensionReading pairs a dimension score with both qualitative scales
type DimensionReading struct {
	Dimension string              `json:"dimension"`
	Score     float64             `json:"score"`
	Level     analysis.ScoreLevel `json:"level"`
	Badge     analysis.ScoreLevel `json:"badge"`
}

type Report struct {
	ParticipantName  string                    `json:"participant_name"`
	Scores           analysis.DiagnosticScores `json:"scores"`
	OverallBadge     analysis.ScoreLevel       `json:"overall_badge"`
	Readings         []DimensionReading        `json:"readings"`
	Weakest          []analysis.DimensionScore `json:"weakest"`
	Strongest        []analysis.DimensionScore `json:"strongest"`
	Insights         []analysis.CrossInsight   `json:"insights"`
	ActionPlan       analysis.ActionPlan       `json:"action_plan"`
	Recommendations  []analysis.Recommendation `json:"recommendations"`
	ExecutiveSummary string                    `json:"executive_summary"`
	Unresolved       []string                  `json:"unresolved_dimensions,omitempty"`
}

type Builder struct {
	logger   *monitoring.Logger
	observer Observer
}

// NewBuilder returns a Builder. A nil logger falls back to slog's default
// logger, a nil observer disables counters.
func NewBuilder(logger *monitoring.Logger, observer Observer) *Builder {
	if logger == nil {
		logger = &monitoring.Logger{Logger: slog.Default()}
	}
	return &Builder{logger: logger, observer: observer}
}

// FromResponses scores the answers and builds the report. Question dimension
// names are normalized before scoring, so slugs and variant spellings land on
// the canonical dimension; names that do not resolve are kept and flagged.
func (b *Builder) FromResponses(participantName string, questions []analysis.Question, responses analysis.Responses) Report {
	start := time.Now()

	var unresolved []string
	seen := make(map[string]bool)
	normalized := make([]analysis.Question, len(questions))
	for i, q := range questions {
		canonical, ok := dimensions.Resolve(q.Dimension)
		if !ok && !seen[q.Dimension] {
			seen[q.Dimension] = true
			unresolved = append(unresolved, q.Dimension)
		}
		q.Dimension = canonical
		normalized[i] = q
	}

	scores := analysis.CalculateScores(normalized, responses)
	return b.finish(SourceResponses, participantName, scores, unresolved, start)
}

// FromRecords builds a report from stored dimension scores. Names are
// normalized first; known dimensions are ordered by registry order and
// unresolved names follow in input order.
func (b *Builder) FromRecords(participantName string, records []dimensions.ScoreRecord) Report {
	start := time.Now()
	unresolved := dimensions.UnresolvedNames(records)
	normalized := dimensions.NormalizeScores(records)

	scores := make([]analysis.DimensionScore, 0, len(normalized))
	for i, r := range normalized {
		order := len(dimensions.All()) + 1 + i
		if d, ok := dimensions.ByName(r.Dimension); ok {
			order = int(d.ID)
		}
		scores = append(scores, analysis.DimensionScore{
			Dimension:      r.Dimension,
			DimensionOrder: order,
			Score:          r.Score,
			MaxScore:       r.MaxScore,
			Percentage:     r.Percentage,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].DimensionOrder < scores[j].DimensionOrder
	})

	return b.finish(SourceRecords, participantName, analysis.AggregateScores(scores), unresolved, start)
}

func (b *Builder) finish(source, participantName string, scores analysis.DiagnosticScores, unresolved []string, start time.Time) Report {
	for _, name := range unresolved {
		b.logger.UnresolvedDimensionLogger(name, source)
		if b.observer != nil {
			b.observer.IncUnresolvedDimension(source)
		}
	}

	r := Build(participantName, scores)
	r.Unresolved = unresolved

	if b.observer != nil {
		b.observer.IncReportBuilt(source)
	}
	b.logger.ScoringLogger(source, len(scores.DimensionScores), scores.TotalScore, time.Since(start))
	return r
}

// Build runs the interpretation stages over already computed scores. The
// executive summary needs two dimensions and is left empty otherwise.
func Build(participantName string, scores analysis.DiagnosticScores) Report {
	dims := scores.DimensionScores

	readings := make([]DimensionReading, 0, len(dims))
	for _, s := range dims {
		readings = append(readings, DimensionReading{
			Dimension: s.Dimension,
			Score:     s.Score,
			Level:     analysis.GetScoreLevel(s.Score),
			Badge:     analysis.GetScoreLevelBadge(s.Score),
		})
	}

	weakest := analysis.GetWeakestDimensions(dims)
	weakNames := make([]string, 0, len(weakest))
	for _, w := range weakest {
		weakNames = append(weakNames, w.Dimension)
	}

	r := Report{
		ParticipantName: participantName,
		Scores:          scores,
		OverallBadge:    analysis.GetScoreLevelBadge(scores.TotalScore),
		Readings:        readings,
		Weakest:         weakest,
		Strongest:       analysis.GetStrongestDimensions(dims),
		Insights:        analysis.GetCrossAnalysisInsights(dims),
		ActionPlan:      analysis.GenerateActionPlan(dims),
		Recommendations: analysis.GetRecommendationsForWeakDimensions(weakNames),
	}

	if len(dims) >= 2 {
		r.ExecutiveSummary = analysis.GenerateExecutiveSummary(analysis.SummaryInput{
			ParticipantName: participantName,
			TotalScore:      scores.TotalScore,
			DimensionScores: dims,
		})
	}
	return r
}
