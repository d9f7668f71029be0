package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User          UserRepository
	Service       ServiceRepository
	BusinessHours BusinessHoursRepository
	BlockedDate   BlockedDateRepository
	Appointment   AppointmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Service:       NewServiceRepo(db),
		BusinessHours: NewBusinessHoursRepo(db),
		BlockedDate:   NewBlockedDateRepo(db),
		Appointment:   NewAppointmentRepo(db),
	}
}
