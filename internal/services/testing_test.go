package services

import (
	"testing"

	"formio/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 每个测试使用独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.Form{},
		&models.FormSubmission{},
	))

	return db
}

// setupFormService 建好默认租户并返回注入了租户ID的表单服务
func setupFormService(t *testing.T, db *gorm.DB) *FormService {
	t.Helper()

	tenant, err := NewTenantService(db).EnsureDefault()
	require.NoError(t, err)

	return NewFormService(db, tenant.ID)
}

func testSchema() datatypes.JSON {
	return datatypes.JSON(`{"components":[{"type":"textfield","key":"name"}]}`)
}
