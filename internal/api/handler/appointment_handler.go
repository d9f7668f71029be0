package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

// AppointmentHandler 预约模块 HTTP 处理器
type AppointmentHandler struct {
	apptSvc service.AppointmentService
}

// NewAppointmentHandler 创建 AppointmentHandler
func NewAppointmentHandler(apptSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptSvc: apptSvc}
}

// Availability 可约时段查询（公开）
// GET /api/v1/appointments/availability?date=2026-01-05&service_id=...
func (h *AppointmentHandler) Availability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	slots, err := h.apptSvc.Availability(c.Request.Context(), req.Date, req.ServiceID)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.NotFound(c, 13001, "服务项目不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"date":       req.Date,
		"service_id": req.ServiceID,
		"slots":      slots,
	})
}

// Create 创建预约
// POST /api/v1/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	appt, err := h.apptSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			response.NotFound(c, 13001, "服务项目不存在")
		case errors.Is(err, service.ErrInvalidStartTime):
			response.BadRequest(c, 15001, "开始时刻非法")
		case errors.Is(err, service.ErrSlotConflict):
			response.Conflict(c, 15003, "该时段已被其他预约占用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, appt)
}

// List 预约列表（管理员全部，客户仅本人）
// GET /api/v1/appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	appts, err := h.apptSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, appts)
}

// UpdateStatus 修改预约状态
// PATCH /api/v1/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	appt, err := h.apptSvc.UpdateStatus(c.Request.Context(), userID, role, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			response.NotFound(c, 15002, "预约不存在")
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, 15004, "预约状态非法")
		case errors.Is(err, service.ErrNotOwner):
			response.Forbidden(c, 15005, "只能操作本人的预约")
		case errors.Is(err, service.ErrClientCancelOnly):
			response.Forbidden(c, 15006, "客户只能取消预约")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, appt)
}

// CalendarFeed 当前用户预约的 iCalendar 订阅
// GET /api/v1/appointments/calendar.ics
func (h *AppointmentHandler) CalendarFeed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.apptSvc.CalendarFeed(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.ics"`)
	c.Data(200, "text/calendar; charset=utf-8", []byte(feed))
}
