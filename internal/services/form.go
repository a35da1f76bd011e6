package services

import (
	"errors"
	"strings"

	"formio/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 业务校验错误
var (
	// ErrTitleRequired 表单标题为空
	ErrTitleRequired = errors.New("表单标题不能为空")
	// ErrTenantUnresolved 默认租户未初始化（前置条件不满足）
	ErrTenantUnresolved = errors.New("默认租户未初始化")
)

type FormService struct {
	db *gorm.DB
	// 默认租户ID由启动阶段解析后显式注入，不读全局状态
	defaultTenantID uint
}

func NewFormService(db *gorm.DB, defaultTenantID uint) *FormService {
	return &FormService{
		db:              db,
		defaultTenantID: defaultTenantID,
	}
}

// Create 创建表单，归属默认租户
func (s *FormService) Create(title, description string, schema datatypes.JSON) (*models.Form, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if s.defaultTenantID == 0 {
		return nil, ErrTenantUnresolved
	}

	form := &models.Form{
		Title:       title,
		Description: description,
		Schema:      schema,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 租户可能被带外删除，先确认存在
		var tenant models.Tenant
		if err := tx.First(&tenant, s.defaultTenantID).Error; err != nil {
			return err
		}
		form.TenantID = tenant.ID
		return tx.Create(form).Error
	})
	if err != nil {
		return nil, err
	}

	return form, nil
}

// Update 更新表单，标题/描述/Schema整体替换
func (s *FormService) Update(id uint, title, description string, schema datatypes.JSON) (*models.Form, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	var form models.Form
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&form, id).Error; err != nil {
			return err
		}
		form.Title = title
		form.Description = description
		form.Schema = schema
		return tx.Save(&form).Error
	})
	if err != nil {
		return nil, err
	}

	return &form, nil
}

// GetByID 根据ID获取表单（含Schema）
func (s *FormService) GetByID(id uint) (*models.Form, error) {
	var form models.Form
	err := s.db.First(&form, id).Error
	return &form, err
}

// GetAll 获取所有表单
func (s *FormService) GetAll() ([]*models.Form, error) {
	var forms []*models.Form
	err := s.db.Find(&forms).Error
	return forms, err
}

// Delete 删除表单并级联删除其所有提交记录
func (s *FormService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var form models.Form
		if err := tx.First(&form, id).Error; err != nil {
			return err
		}
		// 显式删除提交记录，不依赖底层数据库的外键级联配置
		if err := tx.Where("form_id = ?", id).Delete(&models.FormSubmission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&form).Error
	})
}
