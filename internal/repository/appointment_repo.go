package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	pkgerrors "github.com/JesusPaz145/nails-appointment-app/pkg/errors"
)

// pgExclusionViolation 排他约束冲突的 SQLSTATE
const pgExclusionViolation = "23P01"

// AppointmentRepository 预约数据访问接口
// 日期参数统一使用 "2006-01-02" 字符串
type AppointmentRepository interface {
	// Create 插入预约；命中 appointments_no_overlap 排他约束时返回
	// pkgerrors.ErrSlotTaken（并发预约输掉竞争的一方）
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListAll(ctx context.Context) ([]model.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	// ListActiveByDate 查询某日期所有非 cancelled 的预约，供冲突判定使用
	ListActiveByDate(ctx context.Context, date string) ([]model.Appointment, error)
	ListByDateRange(ctx context.Context, from, to string) ([]model.Appointment, error)
	Update(ctx context.Context, appt *model.Appointment) error
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo 创建 AppointmentRepository 实例
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *model.Appointment) error {
	err := r.db.WithContext(ctx).Create(appt).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return pkgerrors.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appt model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("appointment_id = ?", id).
		First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepo) ListAll(ctx context.Context) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Order("appointment_date DESC, start_time DESC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, start_time DESC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListActiveByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_date = ? AND status <> ?", date, model.StatusCancelled).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByDateRange(ctx context.Context, from, to string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("appointment_date BETWEEN ? AND ?", from, to).
		Order("appointment_date ASC, start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) Update(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Save(appt).Error
}
