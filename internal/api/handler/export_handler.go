package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器（仅管理员）
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAppointments 导出日期范围内的预约表
// GET /api/v1/export/appointments?from=2026-01-01&to=2026-01-31
func (h *ExportHandler) ExportAppointments(c *gin.Context) {
	var req dto.ExportAppointmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	if req.From > req.To {
		response.BadRequest(c, 16001, "起始日期不能晚于结束日期")
		return
	}

	buf, filename, err := h.exportSvc.ExportAppointments(c.Request.Context(), req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportEmpty):
			response.NotFound(c, 16002, "该日期范围内没有预约")
		default:
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
