package main

import (
	"fmt"

	"formio/internal/database"
	"formio/internal/services"
	"formio/pkg/logger"
)

// seedData 初始化种子数据，返回解析出的默认租户ID
func seedData() (uint, error) {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	tenantService := services.NewTenantService(database.GetDB())
	tenant, err := tenantService.EnsureDefault()
	if err != nil {
		return 0, fmt.Errorf("初始化默认租户失败: %v", err)
	}

	appLogger.Infof("Using default tenant ID: %d", tenant.ID)
	return tenant.ID, nil
}
