package model

// BusinessHours 营业时间表 — 对应 business_hours
// 每个星期几一条记录；day_of_week 采用 0=周日 … 6=周六 约定
type BusinessHours struct {
	BusinessHoursID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"business_hours_id"`
	DayOfWeek       int    `gorm:"type:smallint;not null;uniqueIndex"             json:"day_of_week"`
	OpenTime        string `gorm:"type:time;not null"                             json:"open_time"`  // "18:00:00"
	CloseTime       string `gorm:"type:time;not null"                             json:"close_time"` // "22:00:00"
	IsActive        bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (BusinessHours) TableName() string { return "business_hours" }
