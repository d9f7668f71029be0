package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
)

// ServiceRepository 服务项目数据访问接口
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string) error
}

type serviceRepo struct {
	db *gorm.DB
}

// NewServiceRepo 创建 ServiceRepository 实例
func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepo) Update(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("service_id = ?", id).
		Delete(&model.Service{}).Error
}
