package service

import (
	"context"
	"sync"

	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// StatusGate finalizes an applicant's interview status exactly once, when the
// last question's answer has been durably submitted. The transition is a
// monotone one-way flag: Not Started -> Completed, never back. Calling
// Complete again is a harmless no-op.
type StatusGate struct {
	applicants repository.ApplicantRepository

	mu        sync.Mutex
	completed map[uint]bool
}

func NewStatusGate(applicants repository.ApplicantRepository) *StatusGate {
	return &StatusGate{
		applicants: applicants,
		completed:  make(map[uint]bool),
	}
}

func (g *StatusGate) Complete(ctx context.Context, applicant *model.Applicant) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.completed[applicant.ID] || applicant.InterviewStatus == model.ApplicantStatusCompleted {
		g.completed[applicant.ID] = true
		return nil
	}

	if err := g.applicants.UpdateStatus(ctx, applicant.ID, model.ApplicantStatusCompleted); err != nil {
		return &PersistenceError{Op: "applicant status update", Err: err}
	}

	applicant.InterviewStatus = model.ApplicantStatusCompleted
	g.completed[applicant.ID] = true
	return nil
}
