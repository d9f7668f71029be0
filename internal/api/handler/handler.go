package handler

import "github.com/JesusPaz145/nails-appointment-app/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Catalog       *CatalogHandler
	BusinessHours *BusinessHoursHandler
	BlockedDate   *BlockedDateHandler
	Appointment   *AppointmentHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		User:          NewUserHandler(svc.User),
		Catalog:       NewCatalogHandler(svc.Catalog),
		BusinessHours: NewBusinessHoursHandler(svc.BusinessHours),
		BlockedDate:   NewBlockedDateHandler(svc.BlockedDate),
		Appointment:   NewAppointmentHandler(svc.Appointment),
		Export:        NewExportHandler(svc.Export),
	}
}
