package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/service"
)

type ApplicantController struct {
	applicantService service.ApplicantService
}

func NewApplicantController(applicantService service.ApplicantService) *ApplicantController {
	return &ApplicantController{applicantService: applicantService}
}

// RegisterApplicant godoc
// @Summary (Recruiter) Register an applicant for an interview
// @Description The response includes the access key embedded in the applicant's interview link.
// @Tags Recruiter - Applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param applicant body dto.ApplicantCreateDTO true "Applicant data"
// @Success 201 {object} dto.ApplicantResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/interviews/{interview_id}/applicants [post]
func (c *ApplicantController) RegisterApplicant(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	var req dto.ApplicantCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.applicantService.RegisterApplicant(ctx.Request.Context(), interviewID, req)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetApplicants godoc
// @Summary (Recruiter) List an interview's applicants
// @Tags Recruiter - Applicants
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {array} dto.ApplicantResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/interviews/{interview_id}/applicants [get]
func (c *ApplicantController) GetApplicants(ctx *gin.Context) {
	interviewID, ok := pathID(ctx, "interview_id")
	if !ok {
		return
	}

	applicants, err := c.applicantService.GetApplicants(ctx.Request.Context(), interviewID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, applicants)
}

// GetApplicantAnswers godoc
// @Summary (Recruiter) Review an applicant's submitted answers
// @Tags Recruiter - Applicants
// @Produce json
// @Security BearerAuth
// @Param applicant_id path int true "Applicant ID"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/applicants/{applicant_id}/answers [get]
func (c *ApplicantController) GetApplicantAnswers(ctx *gin.Context) {
	applicantID, ok := pathID(ctx, "applicant_id")
	if !ok {
		return
	}

	answers, err := c.applicantService.GetApplicantAnswers(ctx.Request.Context(), applicantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// DeleteApplicant godoc
// @Summary (Recruiter) Delete an applicant
// @Tags Recruiter - Applicants
// @Produce json
// @Security BearerAuth
// @Param applicant_id path int true "Applicant ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/applicants/{applicant_id} [delete]
func (c *ApplicantController) DeleteApplicant(ctx *gin.Context) {
	applicantID, ok := pathID(ctx, "applicant_id")
	if !ok {
		return
	}

	if err := c.applicantService.DeleteApplicant(ctx.Request.Context(), applicantID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
