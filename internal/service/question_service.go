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

type QuestionService interface {
	AddQuestion(ctx context.Context, interviewID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestions(ctx context.Context, interviewID uint) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(ctx context.Context, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(ctx context.Context, questionID uint) error
	// PromoteSuggestion turns an accepted generated suggestion into a real
	// question at the next order slot.
	PromoteSuggestion(ctx context.Context, interviewID uint, req dto.PromoteSuggestionDTO) (*dto.QuestionResponseDTO, error)
}

type questionService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	cfg           *config.Config
}

func NewQuestionService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	cfg *config.Config,
) QuestionService {
	return &questionService{interviewRepo: interviewRepo, questionRepo: questionRepo, cfg: cfg}
}

func (s *questionService) AddQuestion(ctx context.Context, interviewID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	return s.createQuestion(ctx, interviewID, req.Text, req.Difficulty)
}

func (s *questionService) PromoteSuggestion(ctx context.Context, interviewID uint, req dto.PromoteSuggestionDTO) (*dto.QuestionResponseDTO, error) {
	return s.createQuestion(ctx, interviewID, req.Text, req.Difficulty)
}

func (s *questionService) createQuestion(ctx context.Context, interviewID uint, text, difficulty string) (*dto.QuestionResponseDTO, error) {
	if _, err := s.interviewRepo.FindByID(ctx, interviewID); err != nil {
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	order, err := s.questionRepo.NextOrder(ctx, interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("AddQuestion: failed to determine next order slot")
		return nil, fmt.Errorf("failed to determine question order: %w", err)
	}

	question := model.Question{
		InterviewID:      interviewID,
		Text:             text,
		Difficulty:       difficulty,
		OrderInInterview: order,
		CreatedBy:        s.cfg.API.User,
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("AddQuestion: repository error")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) GetQuestions(ctx context.Context, interviewID uint) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindByInterviewID(ctx, interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("GetQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions for interview %d: %w", interviewID, err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, question := range questions {
		var d dto.QuestionResponseDTO
		if err := copier.Copy(&d, &question); err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("GetQuestions: copy error")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// UpdateQuestion edits text and difficulty only. The order slot is never
// rewritten here: a live applicant session walks by index over a list loaded
// at session start, and reordering under it would corrupt the walk.
func (s *questionService) UpdateQuestion(ctx context.Context, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}

	question.Text = req.Text
	question.Difficulty = req.Difficulty

	if err := s.questionRepo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: repository error")
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, questionID uint) error {
	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: repository error")
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
