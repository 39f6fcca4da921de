package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ApplicantService interface {
	RegisterApplicant(ctx context.Context, interviewID uint, req dto.ApplicantCreateDTO) (*dto.ApplicantResponseDTO, error)
	GetApplicants(ctx context.Context, interviewID uint) ([]dto.ApplicantResponseDTO, error)
	DeleteApplicant(ctx context.Context, applicantID uint) error
	// GetApplicantAnswers returns the submitted answers in walk order for
	// recruiter review after the interview.
	GetApplicantAnswers(ctx context.Context, applicantID uint) ([]dto.AnswerResponseDTO, error)
}

type applicantService struct {
	interviewRepo repository.InterviewRepository
	applicantRepo repository.ApplicantRepository
	answerRepo    repository.AnswerRepository
	cfg           *config.Config
}

func NewApplicantService(
	interviewRepo repository.InterviewRepository,
	applicantRepo repository.ApplicantRepository,
	answerRepo repository.AnswerRepository,
	cfg *config.Config,
) ApplicantService {
	return &applicantService{
		interviewRepo: interviewRepo,
		applicantRepo: applicantRepo,
		answerRepo:    answerRepo,
		cfg:           cfg,
	}
}

func (s *applicantService) RegisterApplicant(ctx context.Context, interviewID uint, req dto.ApplicantCreateDTO) (*dto.ApplicantResponseDTO, error) {
	if _, err := s.interviewRepo.FindByID(ctx, interviewID); err != nil {
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	applicant := model.Applicant{
		InterviewID:     interviewID,
		Title:           req.Title,
		Firstname:       req.Firstname,
		Surname:         req.Surname,
		Phone:           req.Phone,
		Email:           req.Email,
		InterviewStatus: model.ApplicantStatusNotStarted,
		AccessKey:       uuid.NewString(),
		CreatedBy:       s.cfg.API.User,
	}
	if err := s.applicantRepo.Create(ctx, &applicant); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("RegisterApplicant: repository error")
		return nil, fmt.Errorf("failed to register applicant: %w", err)
	}

	var resp dto.ApplicantResponseDTO
	if err := copier.Copy(&resp, &applicant); err != nil {
		return nil, fmt.Errorf("error preparing applicant response: %w", err)
	}
	return &resp, nil
}

func (s *applicantService) GetApplicants(ctx context.Context, interviewID uint) ([]dto.ApplicantResponseDTO, error) {
	applicants, err := s.applicantRepo.FindByInterviewID(ctx, interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("GetApplicants: repository error")
		return nil, fmt.Errorf("error fetching applicants for interview %d: %w", interviewID, err)
	}

	dtos := make([]dto.ApplicantResponseDTO, 0, len(applicants))
	for _, applicant := range applicants {
		var d dto.ApplicantResponseDTO
		if err := copier.Copy(&d, &applicant); err != nil {
			log.Error().Err(err).Uint("applicantID", applicant.ID).Msg("GetApplicants: copy error")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *applicantService) DeleteApplicant(ctx context.Context, applicantID uint) error {
	if err := s.applicantRepo.Delete(ctx, applicantID); err != nil {
		log.Error().Err(err).Uint("applicantID", applicantID).Msg("DeleteApplicant: repository error")
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	return nil
}

func (s *applicantService) GetApplicantAnswers(ctx context.Context, applicantID uint) ([]dto.AnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		log.Error().Err(err).Uint("applicantID", applicantID).Msg("GetApplicantAnswers: repository error")
		return nil, fmt.Errorf("error fetching answers for applicant %d: %w", applicantID, err)
	}

	dtos := make([]dto.AnswerResponseDTO, 0, len(answers))
	for _, answer := range answers {
		d := dto.AnswerResponseDTO{
			ID:          answer.ID,
			QuestionID:  answer.QuestionID,
			AnswerText:  answer.AnswerText,
			SubmittedAt: answer.CreatedAt,
		}
		if answer.Question.ID != 0 {
			var q dto.QuestionResponseDTO
			if err := copier.Copy(&q, &answer.Question); err == nil {
				d.Question = q
			}
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
