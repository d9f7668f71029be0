package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

// BusinessHoursHandler 营业时间 HTTP 处理器
// 列表公开；修改仅管理员
type BusinessHoursHandler struct {
	hoursSvc service.BusinessHoursService
}

// NewBusinessHoursHandler 创建 BusinessHoursHandler
func NewBusinessHoursHandler(hoursSvc service.BusinessHoursService) *BusinessHoursHandler {
	return &BusinessHoursHandler{hoursSvc: hoursSvc}
}

// List 一周营业时间
// GET /api/v1/business-hours
func (h *BusinessHoursHandler) List(c *gin.Context) {
	hours, err := h.hoursSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, hours)
}

// Update 更新某条营业时间
// PUT /api/v1/business-hours/:id
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	var req dto.UpdateBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	hours, err := h.hoursSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessHoursNotFound):
			response.NotFound(c, 14001, "营业时间记录不存在")
		case errors.Is(err, service.ErrInvalidHours):
			response.BadRequest(c, 14002, "营业时间非法")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, hours)
}
