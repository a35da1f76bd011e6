package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"formio/internal/models"
	"formio/internal/services"
	"formio/pkg/logger"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormRequest 创建/更新表单请求体，更新为整体替换
type FormRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Schema      datatypes.JSON `json:"schema" binding:"required"`
}

// FormSummary 列表项，不携带Schema
type FormSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	TenantID    uint      `json:"tenant_id"`
}

type FormHandler struct {
	service *services.FormService
}

func NewFormHandler(service *services.FormService) *FormHandler {
	return &FormHandler{
		service: service,
	}
}

// bindErrorMessage 将绑定/校验错误翻译为用户可读消息，不透出内部细节
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("参数错误: 字段 %s 校验失败(%s)", verrs[0].Field(), verrs[0].Tag())
	}
	return "参数错误"
}

// Create 创建表单
func (h *FormHandler) Create(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	form, err := h.service.Create(req.Title, req.Description, req.Schema)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTenantUnresolved):
			// 启动阶段未注入租户ID，属于部署错误
			response.ServerError(c, "默认租户未初始化")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "默认租户不存在")
		default:
			logger.GetLogger().Errorf("创建表单失败: %v", err)
			response.ServerError(c, "创建失败")
		}
		return
	}

	response.Created(c, form)
}

// Update 更新表单
func (h *FormHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	form, err := h.service.Update(uint(id), req.Title, req.Description, req.Schema)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "表单不存在")
		default:
			logger.GetLogger().Errorf("更新表单 %d 失败: %v", id, err)
			response.ServerError(c, "更新失败")
		}
		return
	}

	response.Success(c, form)
}

// GetByID 获取表单（含Schema）
func (h *FormHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	form, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "表单不存在")
			return
		}
		logger.GetLogger().Errorf("查询表单 %d 失败: %v", id, err)
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, form)
}

// GetAll 获取所有表单，列表不携带Schema
func (h *FormHandler) GetAll(c *gin.Context) {
	forms, err := h.service.GetAll()
	if err != nil {
		logger.GetLogger().Errorf("查询表单列表失败: %v", err)
		response.ServerError(c, "查询失败")
		return
	}

	summaries := make([]FormSummary, 0, len(forms))
	for _, form := range forms {
		summaries = append(summaries, toFormSummary(form))
	}

	response.Success(c, summaries)
}

// Delete 删除表单并级联删除提交记录
func (h *FormHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "表单不存在")
			return
		}
		logger.GetLogger().Errorf("删除表单 %d 失败: %v", id, err)
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "Form deleted successfully", nil)
}

func toFormSummary(form *models.Form) FormSummary {
	return FormSummary{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		CreatedAt:   form.CreatedAt,
		TenantID:    form.TenantID,
	}
}
