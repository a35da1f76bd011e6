package handlers

import (
	"formio/internal/database"
	"formio/internal/services"
	"formio/pkg/logger"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler 调试/自检接口
type SystemHandler struct {
	tenantService   *services.TenantService
	formService     *services.FormService
	defaultTenantID uint
}

func NewSystemHandler(tenantService *services.TenantService, formService *services.FormService, defaultTenantID uint) *SystemHandler {
	return &SystemHandler{
		tenantService:   tenantService,
		formService:     formService,
		defaultTenantID: defaultTenantID,
	}
}

// DebugDatabase 数据库状态快照，仅用于诊断，不属于稳定契约
func (h *SystemHandler) DebugDatabase(c *gin.Context) {
	tenants, err := h.tenantService.GetAll()
	if err != nil {
		logger.GetLogger().Errorf("查询租户列表失败: %v", err)
		response.ServerError(c, "查询失败")
		return
	}

	forms, err := h.formService.GetAll()
	if err != nil {
		logger.GetLogger().Errorf("查询表单列表失败: %v", err)
		response.ServerError(c, "查询失败")
		return
	}

	tenantInfo := make([]gin.H, 0, len(tenants))
	for _, t := range tenants {
		tenantInfo = append(tenantInfo, gin.H{"id": t.ID, "name": t.Name, "domain": t.Domain})
	}

	formInfo := make([]gin.H, 0, len(forms))
	for _, f := range forms {
		formInfo = append(formInfo, gin.H{"id": f.ID, "title": f.Title, "tenant_id": f.TenantID})
	}

	response.Success(c, gin.H{
		"default_tenant_id": h.defaultTenantID,
		"tenants":           tenantInfo,
		"forms":             formInfo,
		"database_url":      database.DSN(),
	})
}
