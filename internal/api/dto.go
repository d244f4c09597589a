package api

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/disc"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/report"
)

const (
	minResponse = 1
	maxResponse = 5
	maxListSize = 200
)

type ScoresRequest struct {
	Questions []analysis.Question `json:"questions" binding:"required"`
	Responses analysis.Responses  `json:"responses" binding:"required"`
}

type ReportRequest struct {
	ParticipantName string              `json:"participant_name" binding:"required"`
	Questions       []analysis.Question `json:"questions" binding:"required"`
	Responses       analysis.Responses  `json:"responses" binding:"required"`
}

type ReportFromScoresRequest struct {
	ParticipantName string                   `json:"participant_name" binding:"required"`
	Scores          []dimensions.ScoreRecord `json:"scores" binding:"required"`
}

type CreateAssessmentRequest struct {
	ParticipantName string              `json:"participant_name" binding:"required"`
	FacilitatorID   string              `json:"facilitator_id"`
	Questions       []analysis.Question `json:"questions" binding:"required"`
	Responses       analysis.Responses  `json:"responses" binding:"required"`
}

type RecommendationsRequest struct {
	Dimensions []string `json:"dimensions"`
}

type EraseRequest struct {
	ParticipantName string `json:"participant_name" binding:"required"`
}

type EraseResponse struct {
	AssessmentsDeleted int64 `json:"assessments_deleted"`
}

type NormalizeRequest struct {
	Names []string `json:"names" binding:"required"`
}

type DISCScoresRequest struct {
	Questions []disc.Question `json:"questions" binding:"required"`
	Responses map[string]int  `json:"responses" binding:"required"`
}

type NormalizeResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Resolved   bool   `json:"resolved"`
}

type NormalizeResponse struct {
	Results []NormalizeResult `json:"results"`
}

type DimensionsResponse struct {
	Dimensions   []dimensions.Dimension   `json:"dimensions"`
	LikertLabels []dimensions.LikertLabel `json:"likert_labels"`
}

type RecommendationsResponse struct {
	Recommendations []analysis.Recommendation `json:"recommendations"`
}

type AssessmentResponse struct {
	Assessment *database.Assessment `json:"assessment"`
	Report     report.Report        `json:"report"`
}

type AssessmentListResponse struct {
	Assessments []*database.Assessment `json:"assessments"`
	Count       int                    `json:"count"`
}

// validateResponses rejects answers outside the Likert range. Keys are
// checked in sorted order so the reported field is stable.
func validateResponses(responses map[string]int) error {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	problems := map[string]string{}
	for _, id := range ids {
		if v := responses[id]; v < minResponse || v > maxResponse {
			problems[id] = fmt.Sprintf("response %d outside %d..%d", v, minResponse, maxResponse)
		}
	}
	if len(problems) > 0 {
		return apperrors.NewValidationErrorWithMap(problems)
	}
	return nil
}

// requireTwoDimensions guards endpoints that produce an executive summary
func requireTwoDimensions(count int) error {
	if count < 2 {
		return apperrors.NewValidationError("at least two scored dimensions are required", count)
	}
	return nil
}

// prepareRecords fills a missing max score with the instrument maximum and
// rejects scores that cannot be turned into percentages.
func prepareRecords(records []dimensions.ScoreRecord) ([]dimensions.ScoreRecord, error) {
	out := make([]dimensions.ScoreRecord, len(records))
	problems := map[string]string{}
	for i, r := range records {
		if r.MaxScore == 0 {
			r.MaxScore = dimensions.MaxScore
		}
		field := fmt.Sprintf("scores[%d]", i)
		switch {
		case r.Dimension == "":
			problems[field] = "dimension is required"
		case r.MaxScore < 0:
			problems[field] = "max_score must be positive"
		case r.Score < 0 || r.Score > r.MaxScore:
			problems[field] = fmt.Sprintf("score %.2f outside 0..%.2f", r.Score, r.MaxScore)
		}
		out[i] = r
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationErrorWithMap(problems)
	}
	return out, nil
}
