// Package privacy enforces how long participant data is kept and erases it
// on request.
package privacy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
)

// Store is the slice of the assessment repository this service needs
type Store interface {
	DeleteAssessmentsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteParticipantAssessments(ctx context.Context, participantName string) (int64, error)
}

// Service handles data retention and participant erasure
type Service struct {
	store         Store
	logger        *monitoring.Logger
	retentionDays int
	now           func() time.Time
}

// NewService creates a new privacy service. retentionDays <= 0 keeps data forever.
func NewService(store Store, logger *monitoring.Logger, retentionDays int) *Service {
	return &Service{store: store, logger: logger, retentionDays: retentionDays, now: time.Now}
}

// Anonymize returns a stable short digest for logging personal identifiers
func Anonymize(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])[:12]
}

// EraseParticipant deletes every stored assessment of a participant
func (s *Service) EraseParticipant(ctx context.Context, participantName string) (int64, error) {
	deleted, err := s.store.DeleteParticipantAssessments(ctx, participantName)
	if err != nil {
		return 0, fmt.Errorf("erase participant: %w", err)
	}

	s.logger.Info("Participant Data Erased",
		"participant", Anonymize(participantName),
		"assessments_deleted", deleted,
	)
	return deleted, nil
}

// PurgeExpired deletes assessments older than the retention window
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}

	cutoff := s.now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.store.DeleteAssessmentsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge expired assessments: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("Expired Assessments Purged", "cutoff", cutoff, "assessments_deleted", deleted)
	}
	return deleted, nil
}

// Run purges expired data once immediately and then every interval until ctx
// is done. It does nothing when retention is disabled.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if s.retentionDays <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.PurgeExpired(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("Retention purge failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RetentionInfo describes the active policy
func (s *Service) RetentionInfo() map[string]interface{} {
	return map[string]interface{}{
		"retention_days":       s.retentionDays,
		"retention_enabled":    s.retentionDays > 0,
		"anonymization_method": "SHA-256",
	}
}
