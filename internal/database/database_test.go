package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func sampleAssessment(facilitator string) *Assessment {
	return NewAssessment("Maria Silva", facilitator, 3.22, 64.4, []StoredScore{
		{Dimension: "consciencia_interior", Score: 3.2, MaxScore: 5, Percentage: 64},
		{Dimension: "coerencia_emocional", Score: 1.8, MaxScore: 5, Percentage: 36},
	})
}

func TestSaveAndGetAssessment(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	a := sampleAssessment("fac-1")

	require.NoError(t, repo.SaveAssessment(ctx, a))

	got, err := repo.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ParticipantName, got.ParticipantName)
	assert.Equal(t, "fac-1", got.FacilitatorID)
	assert.Equal(t, 3.22, got.TotalScore)
	assert.Equal(t, a.Scores, got.Scores)
	assert.WithinDuration(t, a.CreatedAt, got.CreatedAt, 0)
}

func TestGetAssessmentNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetAssessment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAssessments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, fac := range []string{"fac-1", "fac-1", "fac-2"} {
		require.NoError(t, repo.SaveAssessment(ctx, sampleAssessment(fac)))
	}

	all, err := repo.ListAssessments(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListAssessments(ctx, "fac-1", 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Len(t, mine[0].Scores, 2)

	limited, err := repo.ListAssessments(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDeleteAssessment(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	a := sampleAssessment("")
	require.NoError(t, repo.SaveAssessment(ctx, a))

	require.NoError(t, repo.DeleteAssessment(ctx, a.ID))

	_, err := repo.GetAssessment(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteAssessment(ctx, a.ID), ErrNotFound)
}

func TestServiceStoresSlugsAndLoadsRecords(t *testing.T) {
	repo := newTestRepository(t)
	metrics := monitoring.MustNewMetrics(prometheus.NewRegistry())
	svc := NewAssessmentService(repo, monitoring.NewLoggerWithWriter(io.Discard, "info"), metrics)
	ctx := context.Background()

	scores := analysis.AggregateScores([]analysis.DimensionScore{
		{Dimension: "Consciência Interior", DimensionOrder: 1, Score: 3.2, MaxScore: 5, Percentage: 64},
		{Dimension: "Transformação", DimensionOrder: 5, Score: 4.1, MaxScore: 5, Percentage: 82},
		{Dimension: "Autoestima", DimensionOrder: 6, Score: 2.0, MaxScore: 5, Percentage: 40},
	})

	a, err := svc.RecordDiagnostic(ctx, "Maria Silva", "fac-9", scores)
	require.NoError(t, err)

	stored, records, err := svc.LoadRecords(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", stored.ParticipantName)
	require.Len(t, records, 3)
	assert.Equal(t, "consciencia_interior", records[0].Dimension)
	assert.Equal(t, "transformacao_crescimento", records[1].Dimension)
	assert.Equal(t, "Autoestima", records[2].Dimension)
	assert.Equal(t, 4.1, records[1].Score)

	list, err := svc.List(ctx, "fac-9", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, _, err = svc.LoadRecords(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPoolStats(t *testing.T) {
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	stats := db.GetPoolStats()
	assert.Equal(t, 4, stats["max_open_connections"])
}

func TestSaveDuplicateKeepsDriverError(t *testing.T) {
	repo := newTestRepository(t)
	a := sampleAssessment("fac-1")
	require.NoError(t, repo.SaveAssessment(context.Background(), a))

	err := repo.SaveAssessment(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert assessment: ")

	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
	assert.False(t, isBusy(err))
}

func TestIsBusy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, true},
		{"locked wrapped", fmt.Errorf("failed to commit: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), true},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, false},
		{"not found", ErrNotFound, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isBusy(tt.err))
		})
	}
}

func TestDeleteAssessmentsBefore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	old := sampleAssessment("f1")
	old.CreatedAt = time.Now().UTC().AddDate(0, 0, -400)
	recent := sampleAssessment("f1")
	require.NoError(t, repo.SaveAssessment(ctx, old))
	require.NoError(t, repo.SaveAssessment(ctx, recent))

	deleted, err := repo.DeleteAssessmentsBefore(ctx, time.Now().AddDate(0, 0, -365))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetAssessment(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	kept, err := repo.GetAssessment(ctx, recent.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Scores, 2)

	var orphans int
	require.NoError(t, repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assessment_scores WHERE assessment_id = ?`, old.ID).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestDeleteParticipantAssessments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAssessment(ctx, sampleAssessment("f1")))
	require.NoError(t, repo.SaveAssessment(ctx, sampleAssessment("f2")))
	other := NewAssessment("João Souza", "f1", 3, 60, nil)
	require.NoError(t, repo.SaveAssessment(ctx, other))

	deleted, err := repo.DeleteParticipantAssessments(ctx, "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.ListAssessments(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	deleted, err = repo.DeleteParticipantAssessments(ctx, "Maria Silva")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
