package handlers

import (
	"errors"
	"strconv"

	"formio/internal/services"
	"formio/pkg/logger"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmitFormRequest 表单提交请求体
type SubmitFormRequest struct {
	Data datatypes.JSON `json:"data" binding:"required"`
}

type SubmissionHandler struct {
	service *services.SubmissionService
}

func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
	}
}

// Submit 提交表单数据
func (h *SubmissionHandler) Submit(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	submission, err := h.service.Submit(uint(formID), req.Data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "表单不存在")
			return
		}
		logger.GetLogger().Errorf("提交表单 %d 失败: %v", formID, err)
		response.ServerError(c, "提交失败")
		return
	}

	response.Created(c, submission)
}

// List 获取表单的所有提交记录
func (h *SubmissionHandler) List(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	submissions, err := h.service.ListByForm(uint(formID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "表单不存在")
			return
		}
		logger.GetLogger().Errorf("查询表单 %d 提交记录失败: %v", formID, err)
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, submissions)
}
