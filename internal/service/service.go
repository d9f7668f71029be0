package service

import (
	"go.uber.org/zap"

	"github.com/JesusPaz145/nails-appointment-app/config"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
	"github.com/JesusPaz145/nails-appointment-app/pkg/jwt"
	"github.com/JesusPaz145/nails-appointment-app/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth          AuthService
	User          UserService
	Catalog       CatalogService
	BusinessHours BusinessHoursService
	BlockedDate   BlockedDateService
	Appointment   AppointmentService
	Export        ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:          NewUserService(repo, logger),
		Catalog:       NewCatalogService(repo, logger),
		BusinessHours: NewBusinessHoursService(repo, logger),
		BlockedDate:   NewBlockedDateService(repo, logger),
		Appointment:   NewAppointmentService(repo, cfg.Booking.SlotStepMinutes, logger),
		Export:        NewExportService(repo, logger),
	}
}
