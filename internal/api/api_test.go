package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/cache"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/disc"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/privacy"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/ratelimit"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/report"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, perMinute int) *gin.Engine {
	t.Helper()

	db, err := database.NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := monitoring.NewLoggerWithWriter(io.Discard, "info")
	metrics := monitoring.MustNewMetrics(prometheus.NewRegistry())
	limiter := ratelimit.NewRateLimiter(nil, ratelimit.Config{PerMinute: perMinute, BurstMultiplier: 1}, metrics)
	t.Cleanup(limiter.Close)

	repo := database.NewRepository(db)

	return NewRouter(Deps{
		Logger:         logger,
		Metrics:        metrics,
		Assessments:    database.NewAssessmentService(repo, logger, metrics),
		DB:             db,
		Cache:          cache.NewCache(16, time.Minute),
		Limiter:        limiter,
		AllowedOrigins: []string{"http://localhost:3000"},
		Security:       security.DefaultConfig(),
		Privacy:        privacy.NewService(repo, logger, 365),
	})
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fiveQuestions() []analysis.Question {
	return []analysis.Question{
		{ID: "q1", Dimension: "Consciência Interior", DimensionOrder: 1},
		{ID: "q2", Dimension: "Coerência Emocional", DimensionOrder: 2},
		{ID: "q3", Dimension: "Conexão e Propósito", DimensionOrder: 3},
		{ID: "q4", Dimension: "Relações e Compaixão", DimensionOrder: 4},
		{ID: "q5", Dimension: "Transformação", DimensionOrder: 5, ReverseScored: true},
	}
}

func fiveResponses() analysis.Responses {
	return analysis.Responses{"q1": 3, "q2": 2, "q3": 5, "q4": 2, "q5": 1}
}

func TestRouterWithoutLogger(t *testing.T) {
	r := NewRouter(Deps{
		Cache:          cache.NewCache(16, time.Minute),
		AllowedOrigins: []string{"http://localhost:3000"},
		Security:       security.DefaultConfig(),
	})
	body := ReportRequest{ParticipantName: "Ana", Questions: fiveQuestions(), Responses: fiveResponses()}

	first := doJSON(r, http.MethodPost, "/api/v1/reports", body)
	require.Equal(t, http.StatusOK, first.Code)
	second := doJSON(r, http.MethodPost, "/api/v1/reports", body)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "database")
	assert.Contains(t, body, "cache")
	assert.Contains(t, body, "rate_limit")
}

func TestListDimensions(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodGet, "/api/v1/dimensions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body DimensionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Dimensions, 5)
	assert.Len(t, body.LikertLabels, 5)
	assert.Equal(t, "Consciência Interior", body.Dimensions[0].Name)
}

func TestNormalizeNames(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/dimensions/normalize", NormalizeRequest{
		Names: []string{"transformacao_crescimento", "Autoestima"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body NormalizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, NormalizeResult{Input: "transformacao_crescimento", Normalized: "Transformação", Resolved: true}, body.Results[0])
	assert.Equal(t, NormalizeResult{Input: "Autoestima", Normalized: "Autoestima", Resolved: false}, body.Results[1])
}

func TestCalculateScores(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/scores", ScoresRequest{Questions: fiveQuestions(), Responses: fiveResponses()})

	require.Equal(t, http.StatusOK, w.Code)
	var body analysis.DiagnosticScores
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.DimensionScores, 5)
	assert.Equal(t, 5.0, body.DimensionScores[4].Score, "reverse scored")
	assert.Equal(t, 3.4, body.TotalScore)
}

func TestCalculateScoresRejectsOutOfRange(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/scores", ScoresRequest{
		Questions: fiveQuestions(),
		Responses: analysis.Responses{"q1": 6},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"validation"`)
}

func TestCreateReportIsCached(t *testing.T) {
	r := newTestRouter(t, 100)
	req := ReportRequest{ParticipantName: "Maria Silva", Questions: fiveQuestions(), Responses: fiveResponses()}

	first := doJSON(r, http.MethodPost, "/api/v1/reports", req)
	second := doJSON(r, http.MethodPost, "/api/v1/reports", req)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	var rep report.Report
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &rep))
	assert.Equal(t, "Maria Silva", rep.ParticipantName)
	assert.Contains(t, rep.ExecutiveSummary, "Maria,")
	assert.Len(t, rep.ActionPlan.Weeks, 4)
	assert.Len(t, rep.Recommendations, 2)
}

func TestCreateReportValidation(t *testing.T) {
	r := newTestRouter(t, 100)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing participant", map[string]interface{}{"questions": fiveQuestions(), "responses": fiveResponses()}},
		{"single dimension", ReportRequest{
			ParticipantName: "Ana",
			Questions:       fiveQuestions()[:1],
			Responses:       analysis.Responses{"q1": 3},
		}},
		{"out of range", ReportRequest{ParticipantName: "Ana", Questions: fiveQuestions(), Responses: analysis.Responses{"q1": 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/reports", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEqual(t, "HIT", w.Header().Get("X-Cache"))
		})
	}
}

func TestCreateReportFromScores(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/reports/from-scores", map[string]interface{}{
		"participant_name": "Maria Silva",
		"scores": []map[string]interface{}{
			{"dimension": "consciencia_interior", "score": 3.2},
			{"dimension": "coerencia_emocional", "score": 1.8},
			{"dimension": "Autoestima", "score": 4.0},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var rep report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, []string{"Autoestima"}, rep.Unresolved)
	assert.Equal(t, "Consciência Interior", rep.Scores.DimensionScores[0].Dimension)
	assert.Equal(t, 5.0, rep.Scores.DimensionScores[0].MaxScore)
	assert.InDelta(t, 64.0, rep.Scores.DimensionScores[0].Percentage, 1e-9)
}

func TestCreateReportFromScoresRejectsBadScore(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/reports/from-scores", map[string]interface{}{
		"participant_name": "Ana",
		"scores": []map[string]interface{}{
			{"dimension": "consciencia_interior", "score": 7},
			{"dimension": "coerencia_emocional", "score": 1.8},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsUseExactNames(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/recommendations", RecommendationsRequest{
		Dimensions: []string{"Coerência Emocional", "coerencia_emocional"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "Coerência Emocional", body.Recommendations[0].Dimension)
}

func TestDISCScores(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodPost, "/api/v1/disc/scores", DISCScoresRequest{
		Questions: []disc.Question{
			{ID: "d1", Dimension: "dominancia"},
			{ID: "i1", Dimension: "influencia"},
			{ID: "s1", Dimension: "estabilidade"},
			{ID: "c1", Dimension: "conformidade"},
		},
		Responses: map[string]int{"d1": 2, "i1": 3, "s1": 5, "c1": 4},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body disc.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Scores, 4)
	assert.Equal(t, "SC", body.Profile.Code)
}

func TestAssessmentLifecycle(t *testing.T) {
	r := newTestRouter(t, 100)

	created := doJSON(r, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		ParticipantName: "Maria Silva",
		FacilitatorID:   "fac-1",
		Questions:       fiveQuestions(),
		Responses:       fiveResponses(),
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var createdBody AssessmentResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))
	id := createdBody.Assessment.ID
	require.NotEmpty(t, id)
	assert.Equal(t, "consciencia_interior", createdBody.Assessment.Scores[0].Dimension)

	loaded := doJSON(r, http.MethodGet, "/api/v1/assessments/"+id, nil)
	require.Equal(t, http.StatusOK, loaded.Code)
	var loadedBody AssessmentResponse
	require.NoError(t, json.Unmarshal(loaded.Body.Bytes(), &loadedBody))
	assert.Empty(t, loadedBody.Report.Unresolved)
	assert.Equal(t, createdBody.Report.Scores, loadedBody.Report.Scores)
	assert.Equal(t, createdBody.Report.ExecutiveSummary, loadedBody.Report.ExecutiveSummary)

	list := doJSON(r, http.MethodGet, "/api/v1/assessments?facilitator_id=fac-1", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var listBody AssessmentListResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listBody))
	assert.Equal(t, 1, listBody.Count)

	deleted := doJSON(r, http.MethodDelete, "/api/v1/assessments/"+id, nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	missing := doJSON(r, http.MethodGet, "/api/v1/assessments/"+id, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), `"category":"not_found"`)
}

func TestCreateAssessmentCountsNormalizedDimensions(t *testing.T) {
	r := newTestRouter(t, 100)

	// a slug and its display name are the same dimension
	w := doJSON(r, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		ParticipantName: "Ana",
		Questions: []analysis.Question{
			{ID: "q1", Dimension: "consciencia_interior", DimensionOrder: 1},
			{ID: "q2", Dimension: "Consciência Interior", DimensionOrder: 1},
		},
		Responses: analysis.Responses{"q1": 4, "q2": 2},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		ParticipantName: "Ana",
		Questions: []analysis.Question{
			{ID: "q1", Dimension: "consciencia_interior", DimensionOrder: 1},
			{ID: "q2", Dimension: "coerencia_emocional", DimensionOrder: 2},
		},
		Responses: analysis.Responses{"q1": 5, "q2": 1},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body AssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Report.Unresolved)
	assert.Len(t, body.Report.ActionPlan.Weeks, 4)
	require.Len(t, body.Assessment.Scores, 2)
	assert.Equal(t, "consciencia_interior", body.Assessment.Scores[0].Dimension)
}

func TestListAssessmentsRejectsBadLimit(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodGet, "/api/v1/assessments?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, 1)

	first := doJSON(r, http.MethodGet, "/api/v1/dimensions", nil)
	second := doJSON(r, http.MethodGet, "/api/v1/dimensions", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestMetricsAndSwagger(t *testing.T) {
	r := newTestRouter(t, 100)
	doJSON(r, http.MethodGet, "/api/v1/dimensions", nil)

	metrics := doJSON(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "ies_http_requests_total")

	doc := doJSON(r, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), "IES Diagnostics API")
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/reports", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestParticipantNameIsSanitized(t *testing.T) {
	r := newTestRouter(t, 100)

	tests := []struct {
		name           string
		participant    string
		expectedStatus int
		expectedName   string
	}{
		{"markup stripped", "<b>Maria</b>  Silva", http.StatusOK, "Maria Silva"},
		{"only markup", "<i></i>", http.StatusBadRequest, ""},
		{"too long", string(bytes.Repeat([]byte("a"), 121)), http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/reports", ReportRequest{
				ParticipantName: tt.participant,
				Questions:       fiveQuestions(),
				Responses:       fiveResponses(),
			})
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"category":"validation"`)
				return
			}
			var rep report.Report
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
			assert.Equal(t, tt.expectedName, rep.ParticipantName)
		})
	}
}

func TestSecurityHeadersAndContentType(t *testing.T) {
	r := newTestRouter(t, 100)

	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores", bytes.NewBufferString("questions=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestPrivacyErase(t *testing.T) {
	r := newTestRouter(t, 100)

	for _, name := range []string{"Maria Silva", "Maria Silva", "João Souza"} {
		w := doJSON(r, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
			ParticipantName: name,
			Questions:       fiveQuestions(),
			Responses:       fiveResponses(),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodPost, "/api/v1/privacy/erase", EraseRequest{ParticipantName: "Maria Silva"})
	require.Equal(t, http.StatusOK, w.Code)
	var erased EraseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &erased))
	assert.Equal(t, int64(2), erased.AssessmentsDeleted)

	list := doJSON(r, http.MethodGet, "/api/v1/assessments", nil)
	var listBody AssessmentListResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listBody))
	assert.Equal(t, 1, listBody.Count)

	w = doJSON(r, http.MethodPost, "/api/v1/privacy/erase", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/privacy/retention", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"retention_days":365`)
}
