package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
	"github.com/JesusPaz145/nails-appointment-app/internal/scheduling"
)

// 营业时间相关业务错误
var (
	ErrBusinessHoursNotFound = errors.New("营业时间记录不存在")
	ErrInvalidHours          = errors.New("营业时间非法：开门时刻必须早于关门时刻")
)

// BusinessHoursService 营业时间业务接口
type BusinessHoursService interface {
	List(ctx context.Context) ([]dto.BusinessHoursResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBusinessHoursRequest) (*dto.BusinessHoursResponse, error)
}

type businessHoursService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBusinessHoursService 创建营业时间服务
func NewBusinessHoursService(repo *repository.Repository, logger *zap.Logger) BusinessHoursService {
	return &businessHoursService{repo: repo, logger: logger}
}

// List 返回一周七天的营业时间配置
func (s *businessHoursService) List(ctx context.Context) ([]dto.BusinessHoursResponse, error) {
	hours, err := s.repo.BusinessHours.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BusinessHoursResponse, 0, len(hours))
	for i := range hours {
		resp = append(resp, toBusinessHoursResponse(&hours[i]))
	}
	return resp, nil
}

// Update 更新某条营业时间记录
// 开门/关门时刻接受 "HH:MM" 或 "HH:MM:SS"，存储时统一为 "HH:MM:SS"
func (s *businessHoursService) Update(ctx context.Context, id string, req *dto.UpdateBusinessHoursRequest) (*dto.BusinessHoursResponse, error) {
	open, err := scheduling.ParseClock(req.OpenTime)
	if err != nil {
		return nil, ErrInvalidHours
	}
	close, err := scheduling.ParseClock(req.CloseTime)
	if err != nil {
		return nil, ErrInvalidHours
	}
	if open >= close {
		return nil, ErrInvalidHours
	}

	hours, err := s.repo.BusinessHours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessHoursNotFound
		}
		return nil, err
	}

	hours.OpenTime = scheduling.FormatClock(open)
	hours.CloseTime = scheduling.FormatClock(close)
	hours.IsActive = *req.IsActive

	if err := s.repo.BusinessHours.Update(ctx, hours); err != nil {
		return nil, err
	}

	s.logger.Info("营业时间变更",
		zap.Int("day_of_week", hours.DayOfWeek),
		zap.String("open", hours.OpenTime),
		zap.String("close", hours.CloseTime),
		zap.Bool("is_active", hours.IsActive))

	resp := toBusinessHoursResponse(hours)
	return &resp, nil
}

func toBusinessHoursResponse(h *model.BusinessHours) dto.BusinessHoursResponse {
	return dto.BusinessHoursResponse{
		ID:        h.BusinessHoursID,
		DayOfWeek: h.DayOfWeek,
		OpenTime:  h.OpenTime,
		CloseTime: h.CloseTime,
		IsActive:  h.IsActive,
	}
}
