package model

// Service 美甲服务项目表 — 对应 services
type Service struct {
	ServiceID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"service_id"`
	Name            string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Price           float64 `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	DurationMinutes int     `gorm:"not null"                                       json:"duration_minutes"`
	Description     string  `gorm:"type:text"                                      json:"description"`
	BaseModel
}

// TableName 指定表名
func (Service) TableName() string { return "services" }
