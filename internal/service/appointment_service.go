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
	"github.com/JesusPaz145/nails-appointment-app/internal/scheduling"
	pkgerrors "github.com/JesusPaz145/nails-appointment-app/pkg/errors"
)

// 预约相关业务错误
var (
	ErrAppointmentNotFound = errors.New("预约不存在")
	ErrInvalidStartTime    = errors.New("开始时刻非法或服务跨越午夜")
	ErrInvalidStatus       = errors.New("预约状态非法")
	ErrSlotConflict        = errors.New("该时段已被其他预约占用")
	ErrNotOwner            = errors.New("只能操作本人的预约")
	ErrClientCancelOnly    = errors.New("客户只能取消预约")
)

// AppointmentService 预约业务接口
type AppointmentService interface {
	// Availability 枚举某日期、某服务的全部可约开始时刻，升序 "HH:MM:SS"。
	// 歇业日、封锁日或无有效营业时间时返回空列表。
	Availability(ctx context.Context, date, serviceID string) ([]string, error)
	Create(ctx context.Context, callerID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, callerID, role string) ([]dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, callerID, role, apptID, status string) (*dto.AppointmentResponse, error)
	// CalendarFeed 生成当前用户未取消预约的 iCalendar 订阅内容
	CalendarFeed(ctx context.Context, callerID string) (string, error)
}

type appointmentService struct {
	repo     *repository.Repository
	slotStep int
	logger   *zap.Logger
}

// NewAppointmentService 创建预约服务
// slotStep 为候选开始时刻的枚举步长（分钟）
func NewAppointmentService(repo *repository.Repository, slotStep int, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, slotStep: slotStep, logger: logger}
}

// Availability 可约时段查询
func (s *appointmentService) Availability(ctx context.Context, date, serviceID string) ([]string, error) {
	svc, err := s.repo.Service.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	blocked, err := s.repo.BlockedDate.Exists(ctx, date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []string{}, nil
	}

	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, err
	}

	hours, err := s.repo.BusinessHours.GetActiveByDay(ctx, int(day.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	open, err := scheduling.ParseClock(hours.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := scheduling.ParseClock(hours.CloseTime)
	if err != nil {
		return nil, err
	}

	busy, err := s.busyIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := scheduling.Slots(open, close, svc.DurationMinutes, s.slotStep, busy)
	resp := make([]string, 0, len(slots))
	for _, t := range slots {
		resp = append(resp, scheduling.FormatClock(t))
	}
	return resp, nil
}

// Create 创建预约
// 结束时刻由 开始时刻 + 服务时长 计算；先做一次快速冲突检查，
// 最终以数据库排他约束为准（并发下输掉竞争的一方同样得到冲突错误）
func (s *appointmentService) Create(ctx context.Context, callerID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	start, err := scheduling.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	end := start + svc.DurationMinutes
	if end > scheduling.MinutesPerDay {
		return nil, ErrInvalidStartTime
	}

	busy, err := s.busyIntervals(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if scheduling.Conflicts(scheduling.Interval{Start: start, End: end}, busy) {
		return nil, ErrSlotConflict
	}

	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	day, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		UserID:      &caller.UserID,
		ServiceID:   svc.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Date:        day,
		StartTime:   scheduling.FormatClock(start),
		EndTime:     scheduling.FormatClock(end),
		Notes:       req.Notes,
		Status:      model.StatusPending,
	}

	// 联系方式缺省时用账号资料補全
	if appt.ClientName == "" {
		appt.ClientName = caller.Name
	}
	if appt.ClientPhone == "" {
		appt.ClientPhone = caller.Phone
	}
	if appt.ClientEmail == "" {
		appt.ClientEmail = caller.Email
	}

	if err := s.repo.Appointment.Create(ctx, appt); err != nil {
		if errors.Is(err, pkgerrors.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	s.logger.Info("创建预约",
		zap.String("appointment_id", appt.AppointmentID),
		zap.String("date", req.Date),
		zap.String("start", appt.StartTime),
		zap.String("service", svc.Name))

	appt.Service = svc
	resp := toAppointmentResponse(appt)
	return &resp, nil
}

// List 管理员查看全部预约，客户仅看本人预约
func (s *appointmentService) List(ctx context.Context, callerID, role string) ([]dto.AppointmentResponse, error) {
	var (
		appts []model.Appointment
		err   error
	)
	if role == model.RoleAdmin {
		appts, err = s.repo.Appointment.ListAll(ctx)
	} else {
		appts, err = s.repo.Appointment.ListByUser(ctx, callerID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		resp = append(resp, toAppointmentResponse(&appts[i]))
	}
	return resp, nil
}

// UpdateStatus 修改预约状态
// 管理员可任意流转；客户只能把本人的预约改为 cancelled
func (s *appointmentService) UpdateStatus(ctx context.Context, callerID, role, apptID, status string) (*dto.AppointmentResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	appt, err := s.repo.Appointment.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if role != model.RoleAdmin {
		if appt.UserID == nil || *appt.UserID != callerID {
			return nil, ErrNotOwner
		}
		if status != model.StatusCancelled {
			return nil, ErrClientCancelOnly
		}
	}

	appt.Status = status
	if err := s.repo.Appointment.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info("预约状态变更",
		zap.String("appointment_id", apptID),
		zap.String("status", status),
		zap.String("by_role", role))

	resp := toAppointmentResponse(appt)
	return &resp, nil
}

// busyIntervals 取出某日期所有非 cancelled 预约的占用区间
func (s *appointmentService) busyIntervals(ctx context.Context, date string) ([]scheduling.Interval, error) {
	appts, err := s.repo.Appointment.ListActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	busy := make([]scheduling.Interval, 0, len(appts))
	for i := range appts {
		start, err := scheduling.ParseClock(appts[i].StartTime)
		if err != nil {
			s.logger.Warn("预约开始时刻无法解析，跳过",
				zap.String("appointment_id", appts[i].AppointmentID),
				zap.String("start_time", appts[i].StartTime))
			continue
		}
		end, err := scheduling.ParseClock(appts[i].EndTime)
		if err != nil {
			s.logger.Warn("预约结束时刻无法解析，跳过",
				zap.String("appointment_id", appts[i].AppointmentID),
				zap.String("end_time", appts[i].EndTime))
			continue
		}
		busy = append(busy, scheduling.Interval{Start: start, End: end})
	}
	return busy, nil
}

func toAppointmentResponse(appt *model.Appointment) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:          appt.AppointmentID,
		ServiceID:   appt.ServiceID,
		UserID:      appt.UserID,
		ClientName:  appt.ClientName,
		ClientPhone: appt.ClientPhone,
		ClientEmail: appt.ClientEmail,
		Date:        appt.Date.Format(model.DateLayout),
		StartTime:   appt.StartTime,
		EndTime:     appt.EndTime,
		Notes:       appt.Notes,
		Status:      appt.Status,
		CreatedAt:   appt.CreatedAt.Format(time.RFC3339),
	}
	if appt.Service != nil {
		resp.Service = &dto.ServiceBrief{
			ID:              appt.Service.ServiceID,
			Name:            appt.Service.Name,
			Price:           appt.Service.Price,
			DurationMinutes: appt.Service.DurationMinutes,
		}
	}
	if appt.User != nil {
		resp.UserName = appt.User.Name
	}
	return resp
}
