package models

import (
	"time"

	"gorm.io/datatypes"
)

// Form 表单模型，Schema为表单设计器产出的JSON文档，本层不做结构校验
type Form struct {
	ID          uint           `json:"id" gorm:"primarykey;index:idx_tenant_form,priority:2"`
	TenantID    uint           `json:"tenant_id" gorm:"not null;index:idx_tenant_form,priority:1"`
	Title       string         `json:"title" gorm:"not null;size:200;index"`
	Description string         `json:"description" gorm:"size:500"`
	Schema      datatypes.JSON `json:"schema" gorm:"type:json;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// 删除表单时级联删除其所有提交记录
	Submissions []FormSubmission `json:"-" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

// TableName 表名
func (f *Form) TableName() string {
	return "forms"
}
