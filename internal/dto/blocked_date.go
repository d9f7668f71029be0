package dto

// ── 封锁日期模块 DTO ──

// CreateBlockedDateRequest 新增封锁日期请求
type CreateBlockedDateRequest struct {
	Date   string `json:"date"   binding:"required,datetime=2006-01-02"`
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

// BlockedDateResponse 封锁日期响应
type BlockedDateResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}
