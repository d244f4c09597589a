package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/resilience"
	"github.com/mattn/go-sqlite3"
)

const defaultListLimit = 50

// writeRetry retries writes that lost a lock race with another connection
var writeRetry = func() resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.Retryable = isBusy
	return cfg
}()

// isBusy reports whether err is SQLite lock contention
func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}

// Repository handles assessment persistence
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveAssessment writes the assessment and its scores in one transaction
func (r *Repository) SaveAssessment(ctx context.Context, a *Assessment) error {
	return resilience.Do(ctx, writeRetry, func() error {
		return r.saveAssessment(ctx, a)
	})
}

func (r *Repository) saveAssessment(ctx context.Context, a *Assessment) error {
	insertAssessment, err := r.db.GetPreparedStatement("insert_assessment")
	if err != nil {
		return err
	}
	insertScore, err := r.db.GetPreparedStatement("insert_score")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.WrapError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.StmtContext(ctx, insertAssessment).ExecContext(ctx,
		a.ID, a.ParticipantName, a.FacilitatorID, a.TotalScore, a.TotalPercentage, a.CreatedAt)
	if err != nil {
		return apperrors.WrapError(err, "failed to insert assessment")
	}

	scoreStmt := tx.StmtContext(ctx, insertScore)
	for i, s := range a.Scores {
		if _, err := scoreStmt.ExecContext(ctx, a.ID, i, s.Dimension, s.Score, s.MaxScore, s.Percentage); err != nil {
			return apperrors.WrapError(err, "failed to insert score %s", s.Dimension)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.WrapError(err, "failed to commit assessment")
	}
	return nil
}

// GetAssessment loads an assessment with its scores. Returns ErrNotFound for unknown ids.
func (r *Repository) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	stmt, err := r.db.GetPreparedStatement("get_assessment")
	if err != nil {
		return nil, err
	}

	var a Assessment
	err = stmt.QueryRowContext(ctx, id).Scan(
		&a.ID, &a.ParticipantName, &a.FacilitatorID, &a.TotalScore, &a.TotalPercentage, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to query assessment")
	}

	if a.Scores, err = r.scores(ctx, a.ID); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) scores(ctx context.Context, assessmentID string) ([]StoredScore, error) {
	stmt, err := r.db.GetPreparedStatement("get_scores")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, assessmentID)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to query scores")
	}
	defer rows.Close()

	scores := make([]StoredScore, 0, 5)
	for rows.Next() {
		var s StoredScore
		if err := rows.Scan(&s.Dimension, &s.Score, &s.MaxScore, &s.Percentage); err != nil {
			return nil, apperrors.WrapError(err, "failed to scan score")
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ListAssessments returns the newest assessments first. An empty facilitatorID
// lists all; a non-positive limit uses the default.
func (r *Repository) ListAssessments(ctx context.Context, facilitatorID string, limit int) ([]*Assessment, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, participant_name, facilitator_id, total_score, total_percentage, created_at
		FROM assessments`
	args := []interface{}{}
	if facilitatorID != "" {
		query += ` WHERE facilitator_id = ?`
		args = append(args, facilitatorID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to list assessments")
	}

	assessments := make([]*Assessment, 0)
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(&a.ID, &a.ParticipantName, &a.FacilitatorID, &a.TotalScore, &a.TotalPercentage, &a.CreatedAt); err != nil {
			rows.Close()
			return nil, apperrors.WrapError(err, "failed to scan assessment")
		}
		assessments = append(assessments, &a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperrors.WrapError(err, "failed to iterate assessments")
	}
	rows.Close()

	for _, a := range assessments {
		if a.Scores, err = r.scores(ctx, a.ID); err != nil {
			return nil, err
		}
	}
	return assessments, nil
}

// DeleteAssessment removes an assessment and its scores. Returns ErrNotFound for unknown ids.
func (r *Repository) DeleteAssessment(ctx context.Context, id string) error {
	return resilience.Do(ctx, writeRetry, func() error {
		return r.deleteAssessment(ctx, id)
	})
}

func (r *Repository) deleteAssessment(ctx context.Context, id string) error {
	deleteScores, err := r.db.GetPreparedStatement("delete_scores")
	if err != nil {
		return err
	}
	deleteAssessment, err := r.db.GetPreparedStatement("delete_assessment")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.WrapError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.StmtContext(ctx, deleteScores).ExecContext(ctx, id); err != nil {
		return apperrors.WrapError(err, "failed to delete scores")
	}

	res, err := tx.StmtContext(ctx, deleteAssessment).ExecContext(ctx, id)
	if err != nil {
		return apperrors.WrapError(err, "failed to delete assessment")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return apperrors.WrapError(err, "failed to commit delete")
	}
	return nil
}

// DeleteAssessmentsBefore removes every assessment created before cutoff and
// returns how many went.
func (r *Repository) DeleteAssessmentsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.deleteWhere(ctx, "created_at < ?", cutoff.UTC())
}

// DeleteParticipantAssessments removes every assessment of one participant
func (r *Repository) DeleteParticipantAssessments(ctx context.Context, participantName string) (int64, error) {
	return r.deleteWhere(ctx, "participant_name = ?", participantName)
}

func (r *Repository) deleteWhere(ctx context.Context, where string, arg interface{}) (int64, error) {
	var deleted int64
	err := resilience.Do(ctx, writeRetry, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return apperrors.WrapError(err, "failed to begin transaction")
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM assessment_scores WHERE assessment_id IN (SELECT id FROM assessments WHERE `+where+`)`, arg); err != nil {
			return apperrors.WrapError(err, "failed to delete scores")
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM assessments WHERE `+where, arg)
		if err != nil {
			return apperrors.WrapError(err, "failed to delete assessments")
		}
		if deleted, err = res.RowsAffected(); err != nil {
			return apperrors.WrapError(err, "failed to count deleted assessments")
		}

		if err := tx.Commit(); err != nil {
			return apperrors.WrapError(err, "failed to commit delete")
		}
		return nil
	})
	return deleted, err
}
