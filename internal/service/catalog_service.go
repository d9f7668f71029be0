package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
)

// ErrServiceNotFound 服务项目不存在
var ErrServiceNotFound = errors.New("服务项目不存在")

// CatalogService 服务项目目录业务接口
type CatalogService interface {
	List(ctx context.Context) ([]dto.ServiceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建服务项目目录服务
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// List 返回所有服务项目
func (s *catalogService) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	svcs, err := s.repo.Service.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServiceResponse, 0, len(svcs))
	for i := range svcs {
		resp = append(resp, toServiceResponse(&svcs[i]))
	}
	return resp, nil
}

// GetByID 返回单个服务项目
func (s *catalogService) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	resp := toServiceResponse(svc)
	return &resp, nil
}

// Create 新增服务项目
func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc := &model.Service{
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}
	if err := s.repo.Service.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("新增服务项目", zap.String("service_id", svc.ServiceID), zap.String("name", svc.Name))
	resp := toServiceResponse(svc)
	return &resp, nil
}

// Update 更新服务项目（仅更新请求中出现的字段）
func (s *catalogService) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		return nil, err
	}
	resp := toServiceResponse(svc)
	return &resp, nil
}

// Delete 删除服务项目
func (s *catalogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Service.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.repo.Service.Delete(ctx, id)
}

func toServiceResponse(svc *model.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:              svc.ServiceID,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		Description:     svc.Description,
	}
}
