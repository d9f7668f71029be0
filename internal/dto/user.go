package dto

// ── 用户模块 DTO ──

// UserResponse 用户信息响应
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UpdateUserRoleRequest 修改用户角色请求（客户 ↔ 管理员）
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin client"`
}
