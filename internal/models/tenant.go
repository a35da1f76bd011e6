package models

import "time"

// Tenant 租户模型 - 贫血模型，只包含数据结构
type Tenant struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Domain    string    `json:"domain" gorm:"unique;not null;size:100;index"`
	CreatedAt time.Time `json:"created_at"`

	// 删除租户时级联删除其所有表单
	Forms []Form `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName 表名
func (t *Tenant) TableName() string {
	return "tenants"
}

// 默认租户常量
const (
	DefaultTenantName   = "Default Tenant"
	DefaultTenantDomain = "localhost"
)
