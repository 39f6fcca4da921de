package service

import (
	"context"
	"errors"
	"sync"

	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrAlreadyCompleted refuses re-entry for an applicant whose interview
// status has already moved forward to Completed.
var ErrAlreadyCompleted = errors.New("interview already completed")

// SessionService owns the live interview sessions, keyed by the applicant's
// access key. One logical session per applicant; an interview link is
// single-user by assumption, so the registry only guards against the same
// link being opened twice, not against multi-writer races on answers.
type SessionService interface {
	StartSession(ctx context.Context, accessKey string) (*dto.SessionQuestionDTO, error)
	CurrentQuestion(ctx context.Context, accessKey string) (*dto.SessionQuestionDTO, error)
	Capture(ctx context.Context, accessKey string, action dto.CaptureActionDTO) (*dto.CaptureStateDTO, error)
	Advance(ctx context.Context, accessKey string) (*dto.AdvanceResultDTO, error)
}

type sessionService struct {
	applicants repository.ApplicantRepository
	questions  repository.QuestionRepository
	answers    repository.AnswerRepository
	gate       *StatusGate
	cfg        *config.Config

	mu       sync.Mutex
	sessions map[string]*SessionWalker
}

func NewSessionService(
	applicants repository.ApplicantRepository,
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	gate *StatusGate,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		applicants: applicants,
		questions:  questions,
		answers:    answers,
		gate:       gate,
		cfg:        cfg,
		sessions:   make(map[string]*SessionWalker),
	}
}

// StartSession loads the applicant and the interview's ordered question list
// and builds the walker. Reopening the link while a session is live resumes
// it at the current question; any unsaved transcript for that question was
// abandoned with the old tab, previously submitted answers stay persisted.
func (s *sessionService) StartSession(ctx context.Context, accessKey string) (*dto.SessionQuestionDTO, error) {
	s.mu.Lock()
	if existing, ok := s.sessions[accessKey]; ok {
		s.mu.Unlock()
		return s.questionDTO(existing), nil
	}
	s.mu.Unlock()

	applicant, err := s.applicants.FindByAccessKey(ctx, accessKey)
	if err != nil {
		log.Warn().Err(err).Msg("StartSession: applicant lookup failed")
		return nil, ErrSessionNotFound
	}
	if applicant.InterviewStatus == model.ApplicantStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	questions, err := s.questions.FindByInterviewID(ctx, applicant.InterviewID)
	if err != nil {
		return nil, &PersistenceError{Op: "question list load", Err: err}
	}

	walker, err := NewSessionWalker(applicant, questions, s.answers, s.gate, s.cfg.API.User, s.cfg.API.WriteTimeout)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.sessions[accessKey]; ok {
		walker = existing
	} else {
		s.sessions[accessKey] = walker
	}
	s.mu.Unlock()

	log.Info().Uint("applicantID", applicant.ID).Uint("interviewID", applicant.InterviewID).
		Int("questions", len(questions)).Msg("Interview session started")
	return s.questionDTO(walker), nil
}

func (s *sessionService) CurrentQuestion(_ context.Context, accessKey string) (*dto.SessionQuestionDTO, error) {
	walker, err := s.walker(accessKey)
	if err != nil {
		return nil, err
	}
	return s.questionDTO(walker), nil
}

func (s *sessionService) Capture(_ context.Context, accessKey string, action dto.CaptureActionDTO) (*dto.CaptureStateDTO, error) {
	walker, err := s.walker(accessKey)
	if err != nil {
		return nil, err
	}

	switch action.Action {
	case "start":
		err = walker.StartCapture()
	case "append":
		err = walker.AppendTranscript(action.Transcript)
	case "pause":
		err = walker.PauseCapture()
	case "resume":
		err = walker.ResumeCapture()
	case "device_denied":
		walker.ReportDeviceDenied()
	case "device_granted":
		walker.ReportDeviceGranted()
	default:
		err = ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}

	return &dto.CaptureStateDTO{
		State:      string(walker.CaptureState()),
		Transcript: walker.Transcript(),
	}, nil
}

func (s *sessionService) Advance(ctx context.Context, accessKey string) (*dto.AdvanceResultDTO, error) {
	walker, err := s.walker(accessKey)
	if err != nil {
		return nil, err
	}

	outcome, err := walker.Advance(ctx)
	if err != nil {
		return nil, err
	}

	if outcome.SessionComplete {
		s.mu.Lock()
		delete(s.sessions, accessKey)
		s.mu.Unlock()
		log.Info().Uint("applicantID", walker.Applicant().ID).Msg("Interview session completed")
		return &dto.AdvanceResultDTO{SessionComplete: true}, nil
	}

	return &dto.AdvanceResultDTO{NextQuestion: s.questionDTO(walker)}, nil
}

func (s *sessionService) walker(accessKey string) (*SessionWalker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	walker, ok := s.sessions[accessKey]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return walker, nil
}

func (s *sessionService) questionDTO(walker *SessionWalker) *dto.SessionQuestionDTO {
	question, idx := walker.CurrentQuestion()
	return &dto.SessionQuestionDTO{
		QuestionID:    question.ID,
		Text:          question.Text,
		Index:         idx,
		TotalQuestion: walker.TotalQuestions(),
		CaptureState:  string(walker.CaptureState()),
	}
}
