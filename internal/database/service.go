package database

import (
	"context"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
)

// AssessmentService stores diagnostics and hands them back as score records
type AssessmentService struct {
	repo    *Repository
	logger  *monitoring.Logger
	metrics *monitoring.Metrics
}

// NewAssessmentService creates a new service. metrics may be nil.
func NewAssessmentService(repo *Repository, logger *monitoring.Logger, metrics *monitoring.Metrics) *AssessmentService {
	return &AssessmentService{repo: repo, logger: logger, metrics: metrics}
}

// RecordDiagnostic persists computed scores. Known dimensions are stored by
// slug, anything else by the name as received.
func (s *AssessmentService) RecordDiagnostic(ctx context.Context, participantName, facilitatorID string, scores analysis.DiagnosticScores) (*Assessment, error) {
	stored := make([]StoredScore, 0, len(scores.DimensionScores))
	for _, ds := range scores.DimensionScores {
		name := ds.Dimension
		if d, ok := dimensions.Lookup(name); ok {
			name = d.Slug
		}
		stored = append(stored, StoredScore{
			Dimension:  name,
			Score:      ds.Score,
			MaxScore:   ds.MaxScore,
			Percentage: ds.Percentage,
		})
	}

	a := NewAssessment(participantName, facilitatorID, scores.TotalScore, scores.TotalPercentage, stored)
	if err := s.repo.SaveAssessment(ctx, a); err != nil {
		return nil, apperrors.WrapError(err, "record diagnostic")
	}

	s.metrics.IncAssessmentStored()
	s.logger.Info("Assessment Stored",
		"assessment_id", a.ID,
		"facilitator_id", facilitatorID,
		"dimensions", len(stored),
	)
	return a, nil
}

// LoadRecords fetches an assessment and its scores as records ready for the
// normalizer.
func (s *AssessmentService) LoadRecords(ctx context.Context, id string) (*Assessment, []dimensions.ScoreRecord, error) {
	a, err := s.repo.GetAssessment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return a, ToRecords(a.Scores), nil
}

// ToRecords converts stored rows to score records without touching the names
func ToRecords(scores []StoredScore) []dimensions.ScoreRecord {
	records := make([]dimensions.ScoreRecord, 0, len(scores))
	for _, s := range scores {
		records = append(records, dimensions.ScoreRecord{
			Dimension:  s.Dimension,
			Score:      s.Score,
			MaxScore:   s.MaxScore,
			Percentage: s.Percentage,
		})
	}
	return records
}

// List and Delete pass through to the repository.
func (s *AssessmentService) List(ctx context.Context, facilitatorID string, limit int) ([]*Assessment, error) {
	return s.repo.ListAssessments(ctx, facilitatorID, limit)
}

func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteAssessment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Assessment Deleted", "assessment_id", id)
	return nil
}
