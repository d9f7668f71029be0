package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/scheduling"
)

// CalendarFeed 生成当前用户的 iCalendar 订阅内容
// 仅包含未取消的预约，每条预约对应一个 VEVENT
func (s *appointmentService) CalendarFeed(ctx context.Context, callerID string) (string, error) {
	appts, err := s.repo.Appointment.ListByUser(ctx, callerID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//nails-appointment-app//Booking//EN")
	cal.SetName("美甲预约")

	now := time.Now()
	for i := range appts {
		appt := &appts[i]
		if appt.Status == model.StatusCancelled {
			continue
		}

		start, err := scheduling.ParseClock(appt.StartTime)
		if err != nil {
			continue
		}
		end, err := scheduling.ParseClock(appt.EndTime)
		if err != nil {
			continue
		}

		summary := "美甲预约"
		if appt.Service != nil {
			summary = appt.Service.Name
		}

		evt := cal.AddEvent(fmt.Sprintf("%s@nails-appointment-app", appt.AppointmentID))
		evt.SetCreatedTime(appt.CreatedAt)
		evt.SetDtStampTime(now)
		evt.SetStartAt(clockOn(appt.Date, start))
		evt.SetEndAt(clockOn(appt.Date, end))
		evt.SetSummary(summary)
		if appt.Notes != "" {
			evt.SetDescription(appt.Notes)
		}
		evt.SetProperty(ics.ComponentPropertyStatus, icsStatus(appt.Status))
	}

	return cal.Serialize(), nil
}

// clockOn 把日历日期与当日分钟数合成本地时间点
func clockOn(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.Local)
}

func icsStatus(status string) string {
	switch status {
	case model.StatusConfirmed, model.StatusCompleted:
		return "CONFIRMED"
	default:
		return "TENTATIVE"
	}
}
