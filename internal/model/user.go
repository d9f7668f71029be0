package model

// 用户角色
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Email        string `gorm:"type:varchar(255)"                              json:"email"`
	Phone        string `gorm:"type:varchar(30)"                               json:"phone"`
	Role         string `gorm:"type:varchar(20);not null;default:'client'"     json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
