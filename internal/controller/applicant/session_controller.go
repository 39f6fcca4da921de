package applicant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// StartSession godoc
// @Summary (Applicant) Start or resume an interview session
// @Description Entry is refused for interviews without questions and for applicants who already completed theirs.
// @Tags Applicant - Session
// @Produce json
// @Param access_key path string true "Applicant access key"
// @Success 200 {object} dto.SessionQuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown access key"
// @Failure 409 {object} dto.ErrorResponse "Interview has no questions"
// @Failure 410 {object} dto.ErrorResponse "Interview already completed"
// @Router /session/{access_key}/start [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	accessKey := ctx.Param("access_key")

	question, err := c.sessionService.StartSession(ctx.Request.Context(), accessKey)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// CurrentQuestion godoc
// @Summary (Applicant) Get the current question of the session
// @Tags Applicant - Session
// @Produce json
// @Param access_key path string true "Applicant access key"
// @Success 200 {object} dto.SessionQuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /session/{access_key}/question [get]
func (c *SessionController) CurrentQuestion(ctx *gin.Context) {
	accessKey := ctx.Param("access_key")

	question, err := c.sessionService.CurrentQuestion(ctx.Request.Context(), accessKey)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Capture godoc
// @Summary (Applicant) Drive the recording state machine for the current question
// @Description Actions: start, append (transcript fragment), pause, resume, device_denied, device_granted.
// @Tags Applicant - Session
// @Accept json
// @Produce json
// @Param access_key path string true "Applicant access key"
// @Param action body dto.CaptureActionDTO true "Capture action"
// @Success 200 {object} dto.CaptureStateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Invalid transition or device unavailable"
// @Router /session/{access_key}/capture [post]
func (c *SessionController) Capture(ctx *gin.Context) {
	accessKey := ctx.Param("access_key")

	var req dto.CaptureActionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.Capture(ctx.Request.Context(), accessKey, req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Advance godoc
// @Summary (Applicant) Submit the current answer and move on
// @Description Persists the captured transcript as the answer. On a failed write the session stays on the same question so the applicant can retry; nothing is skipped silently.
// @Tags Applicant - Session
// @Produce json
// @Param access_key path string true "Applicant access key"
// @Success 200 {object} dto.AdvanceResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Answer write failed; question index unchanged"
// @Router /session/{access_key}/advance [post]
func (c *SessionController) Advance(ctx *gin.Context) {
	accessKey := ctx.Param("access_key")

	result, err := c.sessionService.Advance(ctx.Request.Context(), accessKey)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *SessionController) respondError(ctx *gin.Context, err error) {
	var persistErr *service.PersistenceError

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAlreadyCompleted):
		ctx.JSON(http.StatusGone, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNoQuestions):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrDeviceUnavailable):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &persistErr):
		log.Error().Err(err).Msg("Session: answer persistence failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Could not save the answer, please retry", Details: []string{err.Error()}})
	default:
		log.Error().Err(err).Msg("Session: unexpected error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
	}
}
