package services

import (
	"errors"

	"formio/internal/models"
	"formio/pkg/logger"

	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

// EnsureDefault 确保默认租户存在（幂等），返回租户记录
// 进程启动时调用，失败必须阻止服务启动
func (s *TenantService) EnsureDefault() (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Where("name = ?", models.DefaultTenantName).First(&tenant).Error
	if err == nil {
		return &tenant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tenant = models.Tenant{
		Name:   models.DefaultTenantName,
		Domain: models.DefaultTenantDomain,
	}
	if err := s.db.Create(&tenant).Error; err != nil {
		return nil, err
	}

	logger.GetLogger().Infof("Default tenant created with ID: %d", tenant.ID)
	return &tenant, nil
}

// GetByID 根据ID获取租户
func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.First(&tenant, id).Error
	return &tenant, err
}

// GetAll 获取所有租户（调试接口使用）
func (s *TenantService) GetAll() ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	err := s.db.Find(&tenants).Error
	return tenants, err
}
