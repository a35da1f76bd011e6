package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"formio/internal/services"
	"formio/pkg/logger"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler 服务端渲染页面
// 页面内的表单Schema由前端脚本通过API加载
type PageHandler struct {
	service *services.FormService
}

func NewPageHandler(service *services.FormService) *PageHandler {
	return &PageHandler{
		service: service,
	}
}

// Index 表单列表首页
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Builder 新建表单设计器页面
func (h *PageHandler) Builder(c *gin.Context) {
	c.HTML(http.StatusOK, "builder.html", gin.H{
		"IsEdit": false,
	})
}

// BuilderEdit 编辑已有表单的设计器页面
func (h *PageHandler) BuilderEdit(c *gin.Context) {
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
		logger.GetLogger().Errorf("加载表单 %d 失败: %v", id, err)
		response.ServerError(c, "查询失败")
		return
	}

	c.HTML(http.StatusOK, "builder.html", gin.H{
		"IsEdit": true,
		"Form":   form,
	})
}

// Render 表单填写页面
func (h *PageHandler) Render(c *gin.Context) {
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
		logger.GetLogger().Errorf("加载表单 %d 失败: %v", id, err)
		response.ServerError(c, "查询失败")
		return
	}

	c.HTML(http.StatusOK, "form.html", gin.H{
		"Form": form,
	})
}
