package handlers

import (
	"errors"
	"strconv"

	"formio/internal/services"
	"formio/pkg/logger"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InviteRequest 表单分享邀请请求体
type InviteRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type InviteHandler struct {
	service *services.InviteService
}

func NewInviteHandler(service *services.InviteService) *InviteHandler {
	return &InviteHandler{
		service: service,
	}
}

// SendEmail 生成表单分享链接和邮件内容（当前不做实际投递）
func (h *InviteHandler) SendEmail(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	result, err := h.service.PrepareInvite(uint(formID), req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "表单不存在")
			return
		}
		logger.GetLogger().Errorf("生成表单 %d 邀请失败: %v", formID, err)
		response.ServerError(c, "发送失败")
		return
	}

	response.Success(c, result)
}
