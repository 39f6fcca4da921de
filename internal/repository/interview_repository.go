package repository

import (
	"context"

	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *model.Interview) error
	FindByID(ctx context.Context, id uint) (*model.Interview, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Interview, error)
	FindAll(ctx context.Context) ([]model.Interview, error)
	Update(ctx context.Context, interview *model.Interview) error
	Delete(ctx context.Context, id uint) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepository) FindByID(ctx context.Context, id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.WithContext(ctx).First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_interview ASC")
	}).First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAll(ctx context.Context) ([]model.Interview, error) {
	var interviews []model.Interview
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *interviewRepository) Update(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}

func (r *interviewRepository) Delete(ctx context.Context, id uint) error {
	// Dependent questions and applicants are removed by the store's FK
	// constraints, not by this layer.
	return r.db.WithContext(ctx).Delete(&model.Interview{}, id).Error
}
