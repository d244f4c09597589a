package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an assessment id does not exist
var ErrNotFound = errors.New("assessment not found")

// Assessment is one stored diagnostic result
type Assessment struct {
	ID              string        `json:"id" db:"id"`
	ParticipantName string        `json:"participant_name" db:"participant_name"`
	FacilitatorID   string        `json:"facilitator_id,omitempty" db:"facilitator_id"`
	TotalScore      float64       `json:"total_score" db:"total_score"`
	TotalPercentage float64       `json:"total_percentage" db:"total_percentage"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	Scores          []StoredScore `json:"scores"`
}

// StoredScore is a dimension score row. Dimension is a slug for known
// dimensions and the name as received otherwise.
type StoredScore struct {
	Dimension  string  `json:"dimension" db:"dimension"`
	Score      float64 `json:"score" db:"score"`
	MaxScore   float64 `json:"max_score" db:"max_score"`
	Percentage float64 `json:"percentage" db:"percentage"`
}

// NewAssessment creates an assessment with a generated ID
func NewAssessment(participantName, facilitatorID string, totalScore, totalPercentage float64, scores []StoredScore) *Assessment {
	return &Assessment{
		ID:              uuid.New().String(),
		ParticipantName: participantName,
		FacilitatorID:   facilitatorID,
		TotalScore:      totalScore,
		TotalPercentage: totalPercentage,
		CreatedAt:       time.Now().UTC(),
		Scores:          scores,
	}
}
