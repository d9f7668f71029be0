package errors

import "errors"

// ErrSlotTaken 数据库排他约束冲突：时段已被并发预约占用
// 由 AppointmentRepository 在捕获 SQLSTATE 23P01 时返回
var ErrSlotTaken = errors.New("该时段已被其他预约占用")
