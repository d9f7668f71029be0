package dto

// ── 预约模块 DTO ──

// CreateAppointmentRequest 创建预约请求
// 客户联系方式缺省时由当前登录用户资料補全
type CreateAppointmentRequest struct {
	ServiceID   string `json:"service_id"   binding:"required,uuid"`
	Date        string `json:"date"         binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time"   binding:"required"` // "18:30:00" 或 "18:30"
	ClientName  string `json:"client_name"  binding:"omitempty,max=100"`
	ClientPhone string `json:"client_phone" binding:"omitempty,max=30"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	Notes       string `json:"notes"        binding:"omitempty,max=2000"`
}

// UpdateAppointmentStatusRequest 修改预约状态请求
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// AvailabilityRequest 可约时段查询参数
type AvailabilityRequest struct {
	Date      string `form:"date"       binding:"required,datetime=2006-01-02"`
	ServiceID string `form:"service_id" binding:"required,uuid"`
}

// ExportAppointmentsRequest 预约表导出查询参数
type ExportAppointmentsRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to"   binding:"required,datetime=2006-01-02"`
}

// AppointmentResponse 预约信息响应
type AppointmentResponse struct {
	ID          string        `json:"id"`
	ServiceID   string        `json:"service_id"`
	Service     *ServiceBrief `json:"service,omitempty"`
	UserID      *string       `json:"user_id,omitempty"`
	UserName    string        `json:"user_name,omitempty"` // 仅管理员列表携带
	ClientName  string        `json:"client_name"`
	ClientPhone string        `json:"client_phone,omitempty"`
	ClientEmail string        `json:"client_email,omitempty"`
	Date        string        `json:"date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Notes       string        `json:"notes,omitempty"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"created_at"`
}
