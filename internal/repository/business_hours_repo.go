package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
)

// BusinessHoursRepository 营业时间数据访问接口
type BusinessHoursRepository interface {
	GetByID(ctx context.Context, id string) (*model.BusinessHours, error)
	// GetActiveByDay 按星期几查询启用中的营业时间；当天歇业时返回 gorm.ErrRecordNotFound
	GetActiveByDay(ctx context.Context, dayOfWeek int) (*model.BusinessHours, error)
	List(ctx context.Context) ([]model.BusinessHours, error)
	Update(ctx context.Context, hours *model.BusinessHours) error
}

type businessHoursRepo struct {
	db *gorm.DB
}

// NewBusinessHoursRepo 创建 BusinessHoursRepository 实例
func NewBusinessHoursRepo(db *gorm.DB) BusinessHoursRepository {
	return &businessHoursRepo{db: db}
}

func (r *businessHoursRepo) GetByID(ctx context.Context, id string) (*model.BusinessHours, error) {
	var hours model.BusinessHours
	err := r.db.WithContext(ctx).
		Where("business_hours_id = ?", id).
		First(&hours).Error
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *businessHoursRepo) GetActiveByDay(ctx context.Context, dayOfWeek int) (*model.BusinessHours, error) {
	var hours model.BusinessHours
	err := r.db.WithContext(ctx).
		Where("day_of_week = ? AND is_active = ?", dayOfWeek, true).
		First(&hours).Error
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *businessHoursRepo) List(ctx context.Context) ([]model.BusinessHours, error) {
	var hours []model.BusinessHours
	err := r.db.WithContext(ctx).
		Order("day_of_week ASC").
		Find(&hours).Error
	return hours, err
}

func (r *businessHoursRepo) Update(ctx context.Context, hours *model.BusinessHours) error {
	return r.db.WithContext(ctx).Save(hours).Error
}
