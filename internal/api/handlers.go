package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/disc"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/security"
	"github.com/gin-gonic/gin"
)

func (h *handler) health(c *gin.Context) {
	resp := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   Version,
		"uptime":    time.Since(h.started).String(),
	}

	status := http.StatusOK
	if h.deps.DB != nil {
		if err := h.deps.DB.PingContext(c.Request.Context()); err != nil {
			resp["status"] = "degraded"
			resp["database_error"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		resp["database"] = h.deps.DB.GetPoolStats()
	}
	if h.deps.Cache != nil {
		resp["cache"] = h.deps.Cache.Stats()
	}
	if h.deps.Limiter != nil {
		resp["rate_limit"] = h.deps.Limiter.GetStats()
	}
	if h.deps.Compressor != nil {
		resp["compression"] = h.deps.Compressor.GetStats()
	}

	c.JSON(status, resp)
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// cleanText sanitizes a free-text field, recording a validation error on failure
func (h *handler) cleanText(c *gin.Context, field string, value *string, required bool) bool {
	clean, err := security.ValidateText(field, *value, h.deps.Security.MaxTextLength)
	if err != nil {
		_ = c.Error(apperrors.NewValidationError(err.Error(), field))
		return false
	}
	if required && clean == "" {
		_ = c.Error(apperrors.NewValidationError(field+" must not be empty", field))
		return false
	}
	*value = clean
	return true
}

func (h *handler) listDimensions(c *gin.Context) {
	c.JSON(http.StatusOK, DimensionsResponse{
		Dimensions:   dimensions.All(),
		LikertLabels: dimensions.LikertLabels(),
	})
}

func (h *handler) normalizeNames(c *gin.Context) {
	var req NormalizeRequest
	if !bindJSON(c, &req) {
		return
	}

	results := make([]NormalizeResult, 0, len(req.Names))
	for _, name := range req.Names {
		normalized, ok := dimensions.Resolve(name)
		results = append(results, NormalizeResult{Input: name, Normalized: normalized, Resolved: ok})
	}
	c.JSON(http.StatusOK, NormalizeResponse{Results: results})
}

func (h *handler) calculateScores(c *gin.Context) {
	var req ScoresRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateResponses(req.Responses); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, analysis.CalculateScores(req.Questions, req.Responses))
}

func (h *handler) createReport(c *gin.Context) {
	var req ReportRequest
	if !bindJSON(c, &req) || !h.cleanText(c, "participant_name", &req.ParticipantName, true) {
		return
	}
	if err := validateResponses(req.Responses); err != nil {
		_ = c.Error(err)
		return
	}
	rep := h.builder.FromResponses(req.ParticipantName, req.Questions, req.Responses)
	if err := requireTwoDimensions(len(rep.Scores.DimensionScores)); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *handler) createReportFromScores(c *gin.Context) {
	var req ReportFromScoresRequest
	if !bindJSON(c, &req) || !h.cleanText(c, "participant_name", &req.ParticipantName, true) {
		return
	}
	records, err := prepareRecords(req.Scores)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := requireTwoDimensions(len(records)); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, h.builder.FromRecords(req.ParticipantName, records))
}

// recommendations looks names up exactly; callers holding slugs normalize first
func (h *handler) recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, RecommendationsResponse{
		Recommendations: analysis.GetRecommendationsForWeakDimensions(req.Dimensions),
	})
}

func (h *handler) discScores(c *gin.Context) {
	var req DISCScoresRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateResponses(req.Responses); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, disc.CalculateScores(req.Questions, req.Responses))
}

func (h *handler) createAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if !bindJSON(c, &req) ||
		!h.cleanText(c, "participant_name", &req.ParticipantName, true) ||
		!h.cleanText(c, "facilitator_id", &req.FacilitatorID, false) {
		return
	}
	if err := validateResponses(req.Responses); err != nil {
		_ = c.Error(err)
		return
	}

	rep := h.builder.FromResponses(req.ParticipantName, req.Questions, req.Responses)
	if err := requireTwoDimensions(len(rep.Scores.DimensionScores)); err != nil {
		_ = c.Error(err)
		return
	}

	a, err := h.deps.Assessments.RecordDiagnostic(c.Request.Context(), req.ParticipantName, req.FacilitatorID, rep.Scores)
	if err != nil {
		_ = c.Error(storageError("save assessment", "", err))
		return
	}

	c.JSON(http.StatusCreated, AssessmentResponse{Assessment: a, Report: rep})
}

// getAssessment rebuilds the report from stored rows, so stored slugs go
// through the normalizer like any other persisted data.
func (h *handler) getAssessment(c *gin.Context) {
	id := c.Param("id")
	a, records, err := h.deps.Assessments.LoadRecords(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(storageError("load assessment", id, err))
		return
	}

	c.JSON(http.StatusOK, AssessmentResponse{
		Assessment: a,
		Report:     h.builder.FromRecords(a.ParticipantName, records),
	})
}

func (h *handler) listAssessments(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l < 1 || l > maxListSize {
			_ = c.Error(apperrors.NewValidationError("limit must be an integer between 1 and 200", raw))
			return
		}
		limit = l
	}

	list, err := h.deps.Assessments.List(c.Request.Context(), c.Query("facilitator_id"), limit)
	if err != nil {
		_ = c.Error(storageError("list assessments", "", err))
		return
	}
	c.JSON(http.StatusOK, AssessmentListResponse{Assessments: list, Count: len(list)})
}

func (h *handler) deleteAssessment(c *gin.Context) {
	id := c.Param("id")
	if err := h.deps.Assessments.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(storageError("delete assessment", id, err))
		return
	}
	c.Status(http.StatusNoContent)
}

func storageError(operation, id string, err error) *apperrors.AppError {
	if errors.Is(err, database.ErrNotFound) {
		return apperrors.NewNotFoundError("assessment", id)
	}
	return apperrors.NewStorageError(operation, err)
}

func (h *handler) retentionInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Privacy.RetentionInfo())
}

// eraseParticipant deletes every assessment stored under an exact participant name
func (h *handler) eraseParticipant(c *gin.Context) {
	var req EraseRequest
	if !bindJSON(c, &req) || !h.cleanText(c, "participant_name", &req.ParticipantName, true) {
		return
	}

	deleted, err := h.deps.Privacy.EraseParticipant(c.Request.Context(), req.ParticipantName)
	if err != nil {
		_ = c.Error(storageError("erase participant", "", err))
		return
	}
	c.JSON(http.StatusOK, EraseResponse{AssessmentsDeleted: deleted})
}
