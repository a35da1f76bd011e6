package models

import (
	"time"

	"gorm.io/datatypes"
)

// FormSubmission 表单提交记录，只增不改
// TenantID 在提交时从所属表单冗余复制，便于按租户检索
type FormSubmission struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	FormID      uint           `json:"form_id" gorm:"not null;index:idx_tenant_submission,priority:2"`
	TenantID    uint           `json:"tenant_id" gorm:"not null;index:idx_tenant_submission,priority:1"`
	Data        datatypes.JSON `json:"data" gorm:"type:json;not null"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime;index:idx_tenant_submission,priority:3"`
}

// TableName 表名
func (s *FormSubmission) TableName() string {
	return "form_submissions"
}
