package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// CreateInterview godoc
// @Summary (Recruiter) Create a new interview
// @Tags Recruiter - Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body dto.InterviewCreateDTO true "Interview data"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/interviews [post]
func (c *InterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.CreateInterview(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllInterviews godoc
// @Summary (Recruiter) List interviews with question and applicant counts
// @Tags Recruiter - Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/interviews [get]
func (c *InterviewController) GetAllInterviews(ctx *gin.Context) {
	interviews, err := c.interviewService.GetAllInterviews(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interviews", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetInterviewDetails godoc
// @Summary (Recruiter) Get an interview with its ordered questions
// @Tags Recruiter - Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/interviews/{interview_id} [get]
func (c *InterviewController) GetInterviewDetails(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	details, err := c.interviewService.GetInterviewDetails(ctx.Request.Context(), interviewID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// UpdateInterview godoc
// @Summary (Recruiter) Update interview metadata
// @Tags Recruiter - Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param interview body dto.InterviewUpdateDTO true "Updated interview data"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/interviews/{interview_id} [put]
func (c *InterviewController) UpdateInterview(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	var req dto.InterviewUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.UpdateInterview(ctx.Request.Context(), interviewID, req)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteInterview godoc
// @Summary (Recruiter) Delete an interview
// @Tags Recruiter - Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/interviews/{interview_id} [delete]
func (c *InterviewController) DeleteInterview(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	if err := c.interviewService.DeleteInterview(ctx.Request.Context(), interviewID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GenerateSuggestions godoc
// @Summary (Recruiter) Generate question suggestions for the interview's job role
// @Description Concurrent requests for the same job role share a single model call. Output is schema-validated before it is returned.
// @Tags Recruiter - Suggestions
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.SuggestionListDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Model output failed validation or the model call failed"
// @Router /admin/interviews/{interview_id}/suggestions [post]
func (c *InterviewController) GenerateSuggestions(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	suggestions, err := c.interviewService.GenerateSuggestions(ctx.Request.Context(), interviewID)
	if err != nil {
		var schemaErr *service.SchemaValidationError
		if errors.As(err, &schemaErr) {
			log.Warn().Err(err).Uint("interviewID", interviewID).Msg("GenerateSuggestions: model output rejected")
			ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Generated questions failed validation", Details: []string{schemaErr.Reason}})
			return
		}
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("GenerateSuggestions: service error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Question generation failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, suggestions)
}

// pathID parses an unsigned integer path parameter, responding with 400 on
// malformed input.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
