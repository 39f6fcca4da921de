package repository

import (
	"context"

	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	// FindByApplicantID returns an applicant's answers with their questions,
	// in the interview's walk order, for recruiter review.
	FindByApplicantID(ctx context.Context, applicantID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) FindByApplicantID(ctx context.Context, applicantID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Preload("Question").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.applicant_id = ?", applicantID).
		Order("questions.order_in_interview ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
