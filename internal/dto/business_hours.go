package dto

// ── 营业时间模块 DTO ──

// UpdateBusinessHoursRequest 更新某个星期几的营业时间请求
type UpdateBusinessHoursRequest struct {
	OpenTime  string `json:"open_time"  binding:"required"` // "18:00:00"
	CloseTime string `json:"close_time" binding:"required"`
	IsActive  *bool  `json:"is_active"  binding:"required"`
}

// BusinessHoursResponse 营业时间响应
type BusinessHoursResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"` // 0=周日 … 6=周六
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsActive  bool   `json:"is_active"`
}
