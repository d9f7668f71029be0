package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	pkgerrors "github.com/JesusPaz145/nails-appointment-app/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%03d", len(m.users)+1)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

// ── Mock ServiceRepository ──

type mockServiceRepo struct {
	services map[string]*model.Service
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: make(map[string]*model.Service)}
}

func (m *mockServiceRepo) Create(_ context.Context, svc *model.Service) error {
	if svc.ServiceID == "" {
		svc.ServiceID = fmt.Sprintf("svc-%03d", len(m.services)+1)
	}
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceRepo) List(_ context.Context) ([]model.Service, error) {
	var result []model.Service
	for _, s := range m.services {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockServiceRepo) Update(_ context.Context, svc *model.Service) error {
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id string) error {
	delete(m.services, id)
	return nil
}

// ── Mock BusinessHoursRepository ──

type mockBusinessHoursRepo struct {
	hours map[string]*model.BusinessHours
}

func newMockBusinessHoursRepo() *mockBusinessHoursRepo {
	return &mockBusinessHoursRepo{hours: make(map[string]*model.BusinessHours)}
}

func (m *mockBusinessHoursRepo) GetByID(_ context.Context, id string) (*model.BusinessHours, error) {
	if h, ok := m.hours[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBusinessHoursRepo) GetActiveByDay(_ context.Context, dayOfWeek int) (*model.BusinessHours, error) {
	for _, h := range m.hours {
		if h.DayOfWeek == dayOfWeek && h.IsActive {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBusinessHoursRepo) List(_ context.Context) ([]model.BusinessHours, error) {
	var result []model.BusinessHours
	for _, h := range m.hours {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DayOfWeek < result[j].DayOfWeek })
	return result, nil
}

func (m *mockBusinessHoursRepo) Update(_ context.Context, hours *model.BusinessHours) error {
	m.hours[hours.BusinessHoursID] = hours
	return nil
}

// ── Mock BlockedDateRepository ──

type mockBlockedDateRepo struct {
	dates map[string]*model.BlockedDate
}

func newMockBlockedDateRepo() *mockBlockedDateRepo {
	return &mockBlockedDateRepo{dates: make(map[string]*model.BlockedDate)}
}

func (m *mockBlockedDateRepo) Create(_ context.Context, bd *model.BlockedDate) error {
	if bd.BlockedDateID == "" {
		bd.BlockedDateID = fmt.Sprintf("blk-%03d", len(m.dates)+1)
	}
	for _, d := range m.dates {
		if d.BlockedOn.Equal(bd.BlockedOn) {
			return gorm.ErrDuplicatedKey
		}
	}
	m.dates[bd.BlockedDateID] = bd
	return nil
}

func (m *mockBlockedDateRepo) GetByID(_ context.Context, id string) (*model.BlockedDate, error) {
	if d, ok := m.dates[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBlockedDateRepo) Exists(_ context.Context, date string) (bool, error) {
	for _, d := range m.dates {
		if d.BlockedOn.Format(model.DateLayout) == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBlockedDateRepo) List(_ context.Context) ([]model.BlockedDate, error) {
	var result []model.BlockedDate
	for _, d := range m.dates {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockBlockedDateRepo) Delete(_ context.Context, id string) error {
	delete(m.dates, id)
	return nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appts map[string]*model.Appointment
	// forceSlotTaken 模拟数据库排他约束在并发下拒绝插入
	forceSlotTaken bool
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appts: make(map[string]*model.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	if m.forceSlotTaken {
		return pkgerrors.ErrSlotTaken
	}
	if appt.AppointmentID == "" {
		appt.AppointmentID = fmt.Sprintf("appt-%03d", len(m.appts)+1)
	}
	appt.CreatedAt = time.Now()
	m.appts[appt.AppointmentID] = appt
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	if a, ok := m.appts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) ListAll(_ context.Context) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByUser(_ context.Context, userID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.UserID != nil && *a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListActiveByDate(_ context.Context, date string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		if a.Date.Format(model.DateLayout) == date && a.Status != model.StatusCancelled {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *mockAppointmentRepo) ListByDateRange(_ context.Context, from, to string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appts {
		d := a.Date.Format(model.DateLayout)
		if d >= from && d <= to {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		di, dj := result[i].Date.Format(model.DateLayout), result[j].Date.Format(model.DateLayout)
		if di != dj {
			return di < dj
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, appt *model.Appointment) error {
	m.appts[appt.AppointmentID] = appt
	return nil
}
