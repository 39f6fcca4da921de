package service

import (
	"context"
	"sync"
	"time"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// AdvanceOutcome is the result of submitting the current answer. Either the
// session is complete, or NextIndex points at the newly exposed question.
type AdvanceOutcome struct {
	SessionComplete bool
	NextIndex       int
}

// SessionWalker advances one applicant through the ordered question list of
// their interview. The list is loaded once at session start and never
// reloaded, so index-based navigation stays stable even if the store reorders
// rows later.
//
// All methods are serialized on an internal mutex: the submission for
// question k completes (or definitively fails) before question k+1's capture
// controller is exposed, so answers can never be written out of order.
type SessionWalker struct {
	mu sync.Mutex

	applicant *model.Applicant
	questions []model.Question
	answers   repository.AnswerRepository
	gate      *StatusGate

	createdBy    string
	writeTimeout time.Duration

	idx     int
	capture *CaptureController

	// finalized and answerPersisted track partial progress through Advance,
	// so a retry after a persistence failure neither re-finalizes the capture
	// nor double-writes the answer.
	finalized       *string
	answerPersisted bool
}

// NewSessionWalker refuses to build a walker over an empty question list;
// callers must not let an applicant enter a question-less interview.
func NewSessionWalker(
	applicant *model.Applicant,
	questions []model.Question,
	answers repository.AnswerRepository,
	gate *StatusGate,
	createdBy string,
	writeTimeout time.Duration,
) (*SessionWalker, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if writeTimeout <= 0 {
		writeTimeout = 15 * time.Second
	}
	return &SessionWalker{
		applicant:    applicant,
		questions:    questions,
		answers:      answers,
		gate:         gate,
		createdBy:    createdBy,
		writeTimeout: writeTimeout,
		capture:      NewCaptureController(),
	}, nil
}

func (w *SessionWalker) Applicant() *model.Applicant {
	return w.applicant
}

func (w *SessionWalker) TotalQuestions() int {
	return len(w.questions)
}

// CurrentQuestion returns the question at the current index along with the
// 0-based index itself.
func (w *SessionWalker) CurrentQuestion() (model.Question, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.questions[w.idx], w.idx
}

func (w *SessionWalker) CaptureState() CaptureState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.State()
}

func (w *SessionWalker) Transcript() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.Transcript()
}

func (w *SessionWalker) StartCapture() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.Start()
}

func (w *SessionWalker) AppendTranscript(fragment string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.Append(fragment)
}

func (w *SessionWalker) PauseCapture() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.Pause()
}

func (w *SessionWalker) ResumeCapture() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.capture.Resume()
}

func (w *SessionWalker) ReportDeviceDenied() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.capture.ReportDeviceDenied()
}

func (w *SessionWalker) ReportDeviceGranted() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.capture.ReportDeviceGranted()
}

// Advance finalizes the current capture, persists the answer and moves to the
// next question. If the write fails the index does NOT move: silently
// skipping a question over a lost answer is exactly the data-integrity bug
// this walker exists to prevent. The caller surfaces the PersistenceError and
// the applicant retries the same question.
//
// On the last question the status gate fires before SessionComplete is
// returned. Calling Advance after completion is idempotent.
func (w *SessionWalker) Advance(ctx context.Context) (AdvanceOutcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	question := w.questions[w.idx]

	if w.finalized == nil {
		transcript, err := w.capture.Finalize()
		if err != nil {
			return AdvanceOutcome{}, err
		}
		w.finalized = &transcript
	}

	ctx, cancel := context.WithTimeout(ctx, w.writeTimeout)
	defer cancel()

	if !w.answerPersisted {
		answer := &model.Answer{
			InterviewID: w.applicant.InterviewID,
			QuestionID:  question.ID,
			ApplicantID: w.applicant.ID,
			AnswerText:  *w.finalized,
			CreatedBy:   w.createdBy,
		}
		if err := w.answers.Create(ctx, answer); err != nil {
			return AdvanceOutcome{}, &PersistenceError{Op: "answer create", Err: err}
		}
		w.answerPersisted = true
	}

	if w.idx == len(w.questions)-1 {
		if err := w.gate.Complete(ctx, w.applicant); err != nil {
			return AdvanceOutcome{}, err
		}
		return AdvanceOutcome{SessionComplete: true, NextIndex: w.idx}, nil
	}

	w.idx++
	w.capture = NewCaptureController()
	w.finalized = nil
	w.answerPersisted = false
	return AdvanceOutcome{NextIndex: w.idx}, nil
}
