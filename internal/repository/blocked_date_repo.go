package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
)

// BlockedDateRepository 封锁日期数据访问接口
// 日期参数统一使用 "2006-01-02" 字符串，PostgreSQL 直接按 date 比较
type BlockedDateRepository interface {
	Create(ctx context.Context, bd *model.BlockedDate) error
	GetByID(ctx context.Context, id string) (*model.BlockedDate, error)
	Exists(ctx context.Context, date string) (bool, error)
	List(ctx context.Context) ([]model.BlockedDate, error)
	Delete(ctx context.Context, id string) error
}

type blockedDateRepo struct {
	db *gorm.DB
}

// NewBlockedDateRepo 创建 BlockedDateRepository 实例
func NewBlockedDateRepo(db *gorm.DB) BlockedDateRepository {
	return &blockedDateRepo{db: db}
}

func (r *blockedDateRepo) Create(ctx context.Context, bd *model.BlockedDate) error {
	return r.db.WithContext(ctx).Create(bd).Error
}

func (r *blockedDateRepo) GetByID(ctx context.Context, id string) (*model.BlockedDate, error) {
	var bd model.BlockedDate
	err := r.db.WithContext(ctx).
		Where("blocked_date_id = ?", id).
		First(&bd).Error
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *blockedDateRepo) Exists(ctx context.Context, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BlockedDate{}).
		Where("blocked_on = ?", date).
		Count(&count).Error
	return count > 0, err
}

func (r *blockedDateRepo) List(ctx context.Context) ([]model.BlockedDate, error) {
	var dates []model.BlockedDate
	err := r.db.WithContext(ctx).
		Order("blocked_on ASC").
		Find(&dates).Error
	return dates, err
}

func (r *blockedDateRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("blocked_date_id = ?", id).
		Delete(&model.BlockedDate{}).Error
}
