package repository

import (
	"context"

	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *model.Applicant) error
	FindByID(ctx context.Context, id uint) (*model.Applicant, error)
	FindByAccessKey(ctx context.Context, accessKey string) (*model.Applicant, error)
	FindByInterviewID(ctx context.Context, interviewID uint) ([]model.Applicant, error)
	CountByInterviewID(ctx context.Context, interviewID uint) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(ctx context.Context, applicant *model.Applicant) error {
	return r.db.WithContext(ctx).Create(applicant).Error
}

func (r *applicantRepository) FindByID(ctx context.Context, id uint) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.WithContext(ctx).First(&applicant, id).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) FindByAccessKey(ctx context.Context, accessKey string) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.WithContext(ctx).Where("access_key = ?", accessKey).First(&applicant).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) FindByInterviewID(ctx context.Context, interviewID uint) ([]model.Applicant, error) {
	var applicants []model.Applicant
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at ASC").
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *applicantRepository) CountByInterviewID(ctx context.Context, interviewID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Applicant{}).
		Where("interview_id = ?", interviewID).
		Count(&count).Error
	return count, err
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Applicant{}).
		Where("id = ?", id).
		Update("interview_status", status).Error
}

func (r *applicantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Applicant{}, id).Error
}
