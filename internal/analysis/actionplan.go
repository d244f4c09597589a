package analysis

import "github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"

// GenerateActionPlan builds a four week plan from the two weakest dimensions.
// Weeks 1 and 3 come from the weakest dimension's curriculum, weeks 2 and 4
// from the second weakest. A focus dimension with no curriculum (for example an
// unnormalized name) leaves its weeks out, so the plan may have fewer than four
// weeks.
func GenerateActionPlan(scores []DimensionScore) ActionPlan {
	weakest := GetWeakestDimensions(scores)

	focus := make([]string, 0, len(weakest))
	for _, s := range weakest {
		focus = append(focus, s.Dimension)
	}

	plan := ActionPlan{FocusDimensions: focus, Weeks: make([]WeekPlan, 0, 4)}
	if len(focus) == 0 {
		return plan
	}

	for i := 0; i < 4; i++ {
		source := i % 2
		if source >= len(focus) {
			continue
		}
		name := focus[source]

		d, ok := dimensions.ByName(name)
		if !ok {
			continue
		}
		curriculum, ok := curricula[d.ID]
		if !ok {
			continue
		}

		week := curriculum[i]
		plan.Weeks = append(plan.Weeks, WeekPlan{
			Week:       i + 1,
			Title:      name + " — " + week.title,
			Objective:  week.objective,
			Practices:  append([]Practice(nil), week.practices[:]...),
			WeeklyGoal: week.weeklyGoal,
		})
	}

	return plan
}
