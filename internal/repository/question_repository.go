package repository

import (
	"context"

	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	// FindByInterviewID returns the interview's questions in walk order.
	FindByInterviewID(ctx context.Context, interviewID uint) ([]model.Question, error)
	CountByInterviewID(ctx context.Context, interviewID uint) (int64, error)
	// NextOrder returns the order slot a newly added question should take.
	NextOrder(ctx context.Context, interviewID uint) (int, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByInterviewID(ctx context.Context, interviewID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("order_in_interview ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByInterviewID(ctx context.Context, interviewID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("interview_id = ?", interviewID).
		Count(&count).Error
	return count, err
}

func (r *questionRepository) NextOrder(ctx context.Context, interviewID uint) (int, error) {
	var maxOrder int
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("interview_id = ?", interviewID).
		Select("COALESCE(MAX(order_in_interview), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}
