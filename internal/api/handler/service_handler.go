package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

// CatalogHandler 服务项目目录 HTTP 处理器
// 列表与详情公开；增删改仅管理员
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// List 服务项目列表
// GET /api/v1/services
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, services)
}

// Get 服务项目详情
// GET /api/v1/services/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.catalogSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.NotFound(c, 13001, "服务项目不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, svc)
}

// Create 新增服务项目
// POST /api/v1/services
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	svc, err := h.catalogSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, svc)
}

// Update 更新服务项目
// PATCH /api/v1/services/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	svc, err := h.catalogSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.NotFound(c, 13001, "服务项目不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, svc)
}

// Delete 删除服务项目
// DELETE /api/v1/services/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			response.NotFound(c, 13001, "服务项目不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
