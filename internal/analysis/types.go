package analysis

// Question is one Likert item of the instrument
type Question struct {
	ID             string `json:"id"`
	Dimension      string `json:"dimension"`
	DimensionOrder int    `json:"dimension_order"`
	QuestionOrder  int    `json:"question_order"`
	Text           string `json:"text"`
	ReverseScored  bool   `json:"reverse_scored"`
}

// Responses maps question id to the raw 1..5 answer. Unanswered questions are absent.
type Responses map[string]int

type DimensionScore struct {
	Dimension      string  `json:"dimension"`
	DimensionOrder int     `json:"dimension_order"`
	Score          float64 `json:"score"`
	MaxScore       float64 `json:"max_score"`
	Percentage     float64 `json:"percentage"`
}

type DiagnosticScores struct {
	DimensionScores []DimensionScore `json:"dimension_scores"`
	TotalScore      float64          `json:"total_score"`
	TotalPercentage float64          `json:"total_percentage"`
}

// ScoreLevel is a qualitative reading of a numeric score
type ScoreLevel struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// CrossInsight is produced when a pair of dimensions matches a high/low pattern
type CrossInsight struct {
	Title              string `json:"title"`
	PrimaryDimension   string `json:"primary_dimension"`
	SecondaryDimension string `json:"secondary_dimension"`
	Narrative          string `json:"narrative"`
	Recommendation     string `json:"recommendation"`
}

type Practice struct {
	TimeOfDay string `json:"time_of_day"`
	Activity  string `json:"activity"`
}

type WeekPlan struct {
	Week       int        `json:"week"`
	Title      string     `json:"title"`
	Objective  string     `json:"objective"`
	Practices  []Practice `json:"practices"`
	WeeklyGoal string     `json:"weekly_goal"`
}

// ActionPlan interleaves the curricula of the two weakest dimensions
type ActionPlan struct {
	FocusDimensions []string   `json:"focus_dimensions"`
	Weeks           []WeekPlan `json:"weeks"`
}

type Recommendation struct {
	Dimension   string   `json:"dimension"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Practices   []string `json:"practices"`
}
