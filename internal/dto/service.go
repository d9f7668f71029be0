package dto

// ── 服务项目模块 DTO ──

// CreateServiceRequest 创建服务项目请求
type CreateServiceRequest struct {
	Name            string  `json:"name"             binding:"required,min=2,max=100"`
	Price           float64 `json:"price"            binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0,lte=1440"`
	Description     string  `json:"description"      binding:"omitempty,max=2000"`
}

// UpdateServiceRequest 更新服务项目请求
type UpdateServiceRequest struct {
	Name            *string  `json:"name"             binding:"omitempty,min=2,max=100"`
	Price           *float64 `json:"price"            binding:"omitempty,gte=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0,lte=1440"`
	Description     *string  `json:"description"      binding:"omitempty,max=2000"`
}

// ServiceResponse 服务项目信息响应
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     string  `json:"description,omitempty"`
}

// ServiceBrief 服务项目简要信息（嵌入预约响应）
type ServiceBrief struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}
