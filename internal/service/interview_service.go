package service

import (
	"context"
	"fmt"

	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type InterviewService interface {
	CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error)
	GetAllInterviews(ctx context.Context) ([]dto.InterviewSummaryDTO, error)
	GetInterviewDetails(ctx context.Context, interviewID uint) (*dto.InterviewResponseDTO, error)
	UpdateInterview(ctx context.Context, interviewID uint, req dto.InterviewUpdateDTO) (*dto.InterviewResponseDTO, error)
	DeleteInterview(ctx context.Context, interviewID uint) error
	GenerateSuggestions(ctx context.Context, interviewID uint) (*dto.SuggestionListDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	applicantRepo repository.ApplicantRepository
	suggestions   SuggestionService
	cfg           *config.Config
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	applicantRepo repository.ApplicantRepository,
	suggestions SuggestionService,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		applicantRepo: applicantRepo,
		suggestions:   suggestions,
		cfg:           cfg,
	}
}

func (s *interviewService) CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error) {
	status := req.Status
	if status == "" {
		status = model.InterviewStatusDraft
	}

	interview := model.Interview{
		Title:       req.Title,
		JobRole:     req.JobRole,
		Status:      status,
		Description: req.Description,
		CreatedBy:   s.cfg.API.User,
	}
	if err := s.interviewRepo.Create(ctx, &interview); err != nil {
		log.Error().Err(err).Msg("CreateInterview: repository error")
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, &interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	return &resp, nil
}

// GetAllInterviews lists interviews with question and applicant counts. The
// counts are display-only; a failed count read logs and degrades to zero
// instead of failing the listing.
func (s *interviewService) GetAllInterviews(ctx context.Context) ([]dto.InterviewSummaryDTO, error) {
	interviews, err := s.interviewRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetAllInterviews: repository error")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, interview := range interviews {
		summary := dto.InterviewSummaryDTO{
			ID:          interview.ID,
			Title:       interview.Title,
			JobRole:     interview.JobRole,
			Status:      interview.Status,
			Description: interview.Description,
			CreatedAt:   interview.CreatedAt,
		}

		if count, err := s.questionRepo.CountByInterviewID(ctx, interview.ID); err != nil {
			log.Warn().Err(err).Uint("interviewID", interview.ID).Msg("GetAllInterviews: question count failed, defaulting to zero")
		} else {
			summary.QuestionCount = int(count)
		}
		if count, err := s.applicantRepo.CountByInterviewID(ctx, interview.ID); err != nil {
			log.Warn().Err(err).Uint("interviewID", interview.ID).Msg("GetAllInterviews: applicant count failed, defaulting to zero")
		} else {
			summary.ApplicantCount = int(count)
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *interviewService) GetInterviewDetails(ctx context.Context, interviewID uint) (*dto.InterviewResponseDTO, error) {
	interview, err := s.interviewRepo.FindByIDWithQuestions(ctx, interviewID)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", interviewID).Msg("GetInterviewDetails: not found")
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview details response: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) UpdateInterview(ctx context.Context, interviewID uint, req dto.InterviewUpdateDTO) (*dto.InterviewResponseDTO, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	interview.Title = req.Title
	interview.JobRole = req.JobRole
	interview.Status = req.Status
	interview.Description = req.Description

	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("UpdateInterview: repository error")
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) DeleteInterview(ctx context.Context, interviewID uint) error {
	if err := s.interviewRepo.Delete(ctx, interviewID); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("DeleteInterview: repository error")
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	return nil
}

// GenerateSuggestions runs question generation against the interview's job
// role. Concurrent requests for the same role share one model call; the
// result here has already passed schema validation.
func (s *interviewService) GenerateSuggestions(ctx context.Context, interviewID uint) (*dto.SuggestionListDTO, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	suggestions, err := s.suggestions.RequestSuggestions(ctx, interview.JobRole)
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionListDTO{JobRole: interview.JobRole, Suggestions: suggestions}, nil
}
