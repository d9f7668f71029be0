package model

import "time"

// BlockedDate 封锁日期表 — 对应 blocked_dates
// 管理员临时歇业的整天封锁，当天不产生任何可约时段
type BlockedDate struct {
	BlockedDateID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"blocked_date_id"`
	BlockedOn     time.Time `gorm:"type:date;not null;uniqueIndex;column:blocked_on" json:"blocked_on"`
	Reason        string    `gorm:"type:varchar(255)"                              json:"reason,omitempty"`
	BaseModel
}

// TableName 指定表名
func (BlockedDate) TableName() string { return "blocked_dates" }
