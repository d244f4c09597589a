package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
)

func TestGenerateActionPlan(t *testing.T) {
	scores := []DimensionScore{
		{Dimension: "Consciência Interior", Score: 3.0},
		{Dimension: "Coerência Emocional", Score: 1.0},
		{Dimension: "Conexão e Propósito", Score: 2.0},
		{Dimension: "Relações e Compaixão", Score: 4.0},
		{Dimension: "Transformação", Score: 5.0},
	}
	snapshot := append([]DimensionScore(nil), scores...)

	plan := GenerateActionPlan(scores)

	assert.Equal(t, []string{"Coerência Emocional", "Conexão e Propósito"}, plan.FocusDimensions)
	require.Len(t, plan.Weeks, 4)

	for i, week := range plan.Weeks {
		assert.Equal(t, i+1, week.Week)
		assert.Len(t, week.Practices, 3)
		assert.NotEmpty(t, week.Objective)
		assert.NotEmpty(t, week.WeeklyGoal)
	}

	assert.True(t, strings.HasPrefix(plan.Weeks[0].Title, "Coerência Emocional — "))
	assert.True(t, strings.HasPrefix(plan.Weeks[1].Title, "Conexão e Propósito — "))
	assert.True(t, strings.HasPrefix(plan.Weeks[2].Title, "Coerência Emocional — "))
	assert.True(t, strings.HasPrefix(plan.Weeks[3].Title, "Conexão e Propósito — "))

	// weeks are taken at their own index from each curriculum
	assert.Equal(t, "Coerência Emocional — "+curricula[dimensions.CoerenciaEmocional][2].title, plan.Weeks[2].Title)
	assert.Equal(t, "Conexão e Propósito — "+curricula[dimensions.ConexaoProposito][1].title, plan.Weeks[1].Title)

	assert.Equal(t, snapshot, scores)
}

func TestGenerateActionPlan_UnknownFocusIsSkipped(t *testing.T) {
	scores := []DimensionScore{
		{Dimension: "coerencia_emocional", Score: 1.0},
		{Dimension: "Transformação", Score: 2.0},
		{Dimension: "Consciência Interior", Score: 4.0},
	}

	plan := GenerateActionPlan(scores)

	assert.Equal(t, []string{"coerencia_emocional", "Transformação"}, plan.FocusDimensions)
	require.Len(t, plan.Weeks, 2)
	assert.Equal(t, 2, plan.Weeks[0].Week)
	assert.Equal(t, 4, plan.Weeks[1].Week)
	for _, w := range plan.Weeks {
		assert.True(t, strings.HasPrefix(w.Title, "Transformação — "))
	}
}

func TestGenerateActionPlan_FewDimensions(t *testing.T) {
	plan := GenerateActionPlan(nil)
	assert.Empty(t, plan.FocusDimensions)
	assert.Empty(t, plan.Weeks)

	plan = GenerateActionPlan([]DimensionScore{{Dimension: "Consciência Interior", Score: 2}})
	assert.Equal(t, []string{"Consciência Interior"}, plan.FocusDimensions)
	require.Len(t, plan.Weeks, 2)
	assert.Equal(t, 1, plan.Weeks[0].Week)
	assert.Equal(t, 3, plan.Weeks[1].Week)
}

func TestGenerateActionPlan_PracticesAreCopies(t *testing.T) {
	scores := []DimensionScore{
		{Dimension: "Consciência Interior", Score: 1.0},
		{Dimension: "Coerência Emocional", Score: 2.0},
	}

	plan := GenerateActionPlan(scores)
	plan.Weeks[0].Practices[0].Activity = "changed"

	again := GenerateActionPlan(scores)
	assert.NotEqual(t, "changed", again.Weeks[0].Practices[0].Activity)
}

func TestEveryDimensionHasCurriculum(t *testing.T) {
	for _, d := range dimensions.All() {
		weeks, ok := curricula[d.ID]
		require.True(t, ok, d.Name)
		for _, w := range weeks {
			assert.NotEmpty(t, w.title)
			for _, p := range w.practices {
				assert.NotEmpty(t, p.TimeOfDay)
				assert.NotEmpty(t, p.Activity)
			}
		}
	}
}
