package services

import (
	"formio/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// Submit 提交表单数据，TenantID从所属表单复制
func (s *SubmissionService) Submit(formID uint, data datatypes.JSON) (*models.FormSubmission, error) {
	var submission *models.FormSubmission

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var form models.Form
		if err := tx.First(&form, formID).Error; err != nil {
			return err
		}

		submission = &models.FormSubmission{
			FormID:   form.ID,
			TenantID: form.TenantID,
			Data:     data,
		}
		return tx.Create(submission).Error
	})
	if err != nil {
		return nil, err
	}

	return submission, nil
}

// ListByForm 获取表单的所有提交记录
// 先确认表单存在：表单不存在返回错误，存在但无提交返回空列表
func (s *SubmissionService) ListByForm(formID uint) ([]*models.FormSubmission, error) {
	var form models.Form
	if err := s.db.First(&form, formID).Error; err != nil {
		return nil, err
	}

	submissions := make([]*models.FormSubmission, 0)
	err := s.db.Where("form_id = ?", formID).Order("submitted_at").Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}
