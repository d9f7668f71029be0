package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

// BlockedDateHandler 封锁日期 HTTP 处理器
// 列表公开；增删仅管理员
type BlockedDateHandler struct {
	blockedSvc service.BlockedDateService
}

// NewBlockedDateHandler 创建 BlockedDateHandler
func NewBlockedDateHandler(blockedSvc service.BlockedDateService) *BlockedDateHandler {
	return &BlockedDateHandler{blockedSvc: blockedSvc}
}

// List 封锁日期列表
// GET /api/v1/blocked-dates
func (h *BlockedDateHandler) List(c *gin.Context) {
	dates, err := h.blockedSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dates)
}

// Create 封锁日期
// POST /api/v1/blocked-dates
func (h *BlockedDateHandler) Create(c *gin.Context) {
	var req dto.CreateBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	blocked, err := h.blockedSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBlockedDateExists) {
			response.Conflict(c, 14003, "该日期已被封锁")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, blocked)
}

// Delete 解除封锁
// DELETE /api/v1/blocked-dates/:id
func (h *BlockedDateHandler) Delete(c *gin.Context) {
	if err := h.blockedSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBlockedDateNotFound) {
			response.NotFound(c, 14004, "封锁日期记录不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
