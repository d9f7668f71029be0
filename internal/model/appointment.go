package model

import "time"

// 预约状态
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus 判断是否为合法的预约状态
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment 预约表 — 对应 appointments
// start_time/end_time 为半开区间 [start, end)，end 在创建时由
// start + 服务时长 计算；仅非 cancelled 的记录参与冲突判定
type Appointment struct {
	AppointmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"appointment_id"`
	UserID        *string   `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	ServiceID     string    `gorm:"type:uuid;not null"                             json:"service_id"`
	ClientName    string    `gorm:"type:varchar(100)"                              json:"client_name"`
	ClientPhone   string    `gorm:"type:varchar(30)"                               json:"client_phone"`
	ClientEmail   string    `gorm:"type:varchar(255)"                              json:"client_email"`
	Date          time.Time `gorm:"type:date;not null;column:appointment_date"     json:"date"`
	StartTime     string    `gorm:"type:time;not null"                             json:"start_time"` // "18:30:00"
	EndTime       string    `gorm:"type:time;not null"                             json:"end_time"`
	Notes         string    `gorm:"type:text"                                      json:"notes,omitempty"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	Service *Service `gorm:"foreignKey:ServiceID;references:ServiceID" json:"service,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;references:UserID"       json:"user,omitempty"`
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }
