package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
)

// 封锁日期相关业务错误
var (
	ErrBlockedDateExists   = errors.New("该日期已被封锁")
	ErrBlockedDateNotFound = errors.New("封锁日期记录不存在")
)

// BlockedDateService 封锁日期业务接口
type BlockedDateService interface {
	List(ctx context.Context) ([]dto.BlockedDateResponse, error)
	Create(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error)
	Delete(ctx context.Context, id string) error
}

type blockedDateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBlockedDateService 创建封锁日期服务
func NewBlockedDateService(repo *repository.Repository, logger *zap.Logger) BlockedDateService {
	return &blockedDateService{repo: repo, logger: logger}
}

// List 返回所有封锁日期
func (s *blockedDateService) List(ctx context.Context) ([]dto.BlockedDateResponse, error) {
	dates, err := s.repo.BlockedDate.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BlockedDateResponse, 0, len(dates))
	for i := range dates {
		resp = append(resp, toBlockedDateResponse(&dates[i]))
	}
	return resp, nil
}

// Create 封锁某个日期，重复封锁视为冲突
func (s *blockedDateService) Create(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error) {
	exists, err := s.repo.BlockedDate.Exists(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBlockedDateExists
	}

	day, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	blocked := &model.BlockedDate{
		BlockedOn: day,
		Reason:    req.Reason,
	}
	if err := s.repo.BlockedDate.Create(ctx, blocked); err != nil {
		// 并发封锁同一天时命中唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBlockedDateExists
		}
		return nil, err
	}

	s.logger.Info("封锁日期", zap.String("date", req.Date), zap.String("reason", req.Reason))
	resp := toBlockedDateResponse(blocked)
	return &resp, nil
}

// Delete 解除封锁
func (s *blockedDateService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.BlockedDate.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlockedDateNotFound
		}
		return err
	}
	return s.repo.BlockedDate.Delete(ctx, id)
}

func toBlockedDateResponse(b *model.BlockedDate) dto.BlockedDateResponse {
	return dto.BlockedDateResponse{
		ID:     b.BlockedDateID,
		Date:   b.BlockedOn.Format(model.DateLayout),
		Reason: b.Reason,
	}
}
