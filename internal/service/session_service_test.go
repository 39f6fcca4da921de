package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/internal/dto"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions []model.Question
}

func (f *fakeQuestionRepo) Create(_ context.Context, question *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	question.ID = uint(len(f.questions) + 1)
	f.questions = append(f.questions, *question)
	return nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.questions {
		if f.questions[i].ID == id {
			q := f.questions[i]
			return &q, nil
		}
	}
	return nil, errors.New("question not found")
}

func (f *fakeQuestionRepo) FindByInterviewID(_ context.Context, interviewID uint) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Question
	for _, q := range f.questions {
		if q.InterviewID == interviewID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) CountByInterviewID(ctx context.Context, interviewID uint) (int64, error) {
	questions, _ := f.FindByInterviewID(ctx, interviewID)
	return int64(len(questions)), nil
}

func (f *fakeQuestionRepo) NextOrder(ctx context.Context, interviewID uint) (int, error) {
	questions, _ := f.FindByInterviewID(ctx, interviewID)
	return len(questions) + 1, nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, question *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.questions {
		if f.questions[i].ID == question.ID {
			f.questions[i] = *question
			return nil
		}
	}
	return errors.New("question not found")
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{API: config.API{User: "system", WriteTimeout: time.Second}}
}

func newTestSessionService(questions []model.Question, answers *fakeAnswerRepo, applicants *fakeApplicantRepo) SessionService {
	questionRepo := &fakeQuestionRepo{questions: questions}
	return NewSessionService(applicants, questionRepo, answers, NewStatusGate(applicants), testConfig())
}

func TestSessionServiceFullInterviewFlow(t *testing.T) {
	answers := &fakeAnswerRepo{}
	applicant := &model.Applicant{
		ID:              1,
		InterviewID:     1,
		Firstname:       "Grace",
		Surname:         "Hopper",
		Email:           "grace@example.com",
		InterviewStatus: model.ApplicantStatusNotStarted,
		AccessKey:       "abc-123",
	}
	applicants := newFakeApplicantRepo(applicant)
	svc := newTestSessionService(makeQuestions(1, "Tell me about yourself", "Why this role?"), answers, applicants)

	ctx := context.Background()

	question, err := svc.StartSession(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, 0, question.Index)
	assert.Equal(t, 2, question.TotalQuestion)
	assert.Equal(t, "Tell me about yourself", question.Text)
	assert.Equal(t, string(CaptureIdle), question.CaptureState)

	// Q1: start, stream two fragments, pause, advance.
	state, err := svc.Capture(ctx, "abc-123", dto.CaptureActionDTO{Action: "start"})
	require.NoError(t, err)
	assert.Equal(t, string(CaptureRecording), state.State)

	_, err = svc.Capture(ctx, "abc-123", dto.CaptureActionDTO{Action: "append", Transcript: "I am"})
	require.NoError(t, err)
	state, err = svc.Capture(ctx, "abc-123", dto.CaptureActionDTO{Action: "append", Transcript: "a developer"})
	require.NoError(t, err)
	assert.Equal(t, "I am a developer", state.Transcript)

	state, err = svc.Capture(ctx, "abc-123", dto.CaptureActionDTO{Action: "pause"})
	require.NoError(t, err)
	assert.Equal(t, string(CapturePaused), state.State)

	result, err := svc.Advance(ctx, "abc-123")
	require.NoError(t, err)
	assert.False(t, result.SessionComplete)
	require.NotNil(t, result.NextQuestion)
	assert.Equal(t, 1, result.NextQuestion.Index)
	assert.Equal(t, "Why this role?", result.NextQuestion.Text)
	assert.Equal(t, string(CaptureIdle), result.NextQuestion.CaptureState, "each question gets a fresh capture controller")

	// Q2: no recording at all, straight to advance.
	result, err = svc.Advance(ctx, "abc-123")
	require.NoError(t, err)
	assert.True(t, result.SessionComplete)
	assert.Nil(t, result.NextQuestion)

	require.Len(t, answers.answers, 2)
	assert.Equal(t, "I am a developer", answers.answers[0].AnswerText)
	assert.Equal(t, "", answers.answers[1].AnswerText)
	assert.Equal(t, uint(1), answers.answers[0].InterviewID)
	assert.Equal(t, applicant.ID, answers.answers[0].ApplicantID)
	assert.Equal(t, model.ApplicantStatusCompleted, applicant.InterviewStatus)
	assert.Equal(t, 1, applicants.statusUpdates)

	// The finished session is gone; the completed applicant cannot re-enter.
	_, err = svc.CurrentQuestion(ctx, "abc-123")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.StartSession(ctx, "abc-123")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestSessionServiceRefusesQuestionlessInterview(t *testing.T) {
	applicant := &model.Applicant{ID: 1, InterviewID: 1, AccessKey: "empty-key", InterviewStatus: model.ApplicantStatusNotStarted}
	applicants := newFakeApplicantRepo(applicant)
	svc := newTestSessionService(nil, &fakeAnswerRepo{}, applicants)

	_, err := svc.StartSession(context.Background(), "empty-key")
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSessionServiceUnknownAccessKey(t *testing.T) {
	svc := newTestSessionService(nil, &fakeAnswerRepo{}, newFakeApplicantRepo())

	_, err := svc.StartSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Capture(context.Background(), "nope", dto.CaptureActionDTO{Action: "start"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Advance(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionServiceResumeKeepsIndex(t *testing.T) {
	answers := &fakeAnswerRepo{}
	applicant := &model.Applicant{ID: 2, InterviewID: 1, AccessKey: "resume-key", InterviewStatus: model.ApplicantStatusNotStarted}
	applicants := newFakeApplicantRepo(applicant)
	svc := newTestSessionService(makeQuestions(1, "Q1", "Q2", "Q3"), answers, applicants)

	ctx := context.Background()

	_, err := svc.StartSession(ctx, "resume-key")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, "resume-key")
	require.NoError(t, err)

	// Reopening the link resumes at the current question; the submitted
	// answer stays persisted.
	question, err := svc.StartSession(ctx, "resume-key")
	require.NoError(t, err)
	assert.Equal(t, 1, question.Index)
	assert.Len(t, answers.answers, 1)
}

func TestSessionServiceDeviceDenied(t *testing.T) {
	applicant := &model.Applicant{ID: 3, InterviewID: 1, AccessKey: "device-key", InterviewStatus: model.ApplicantStatusNotStarted}
	applicants := newFakeApplicantRepo(applicant)
	svc := newTestSessionService(makeQuestions(1, "Q1"), &fakeAnswerRepo{}, applicants)

	ctx := context.Background()
	_, err := svc.StartSession(ctx, "device-key")
	require.NoError(t, err)

	_, err = svc.Capture(ctx, "device-key", dto.CaptureActionDTO{Action: "device_denied"})
	require.NoError(t, err)
	_, err = svc.Capture(ctx, "device-key", dto.CaptureActionDTO{Action: "start"})
	assert.ErrorIs(t, err, ErrDeviceUnavailable)

	_, err = svc.Capture(ctx, "device-key", dto.CaptureActionDTO{Action: "device_granted"})
	require.NoError(t, err)
	state, err := svc.Capture(ctx, "device-key", dto.CaptureActionDTO{Action: "start"})
	require.NoError(t, err)
	assert.Equal(t, string(CaptureRecording), state.State)
}
