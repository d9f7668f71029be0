// Package scheduling 实现预约时段的纯计算核心。
//
// 所有运算使用自零点起的整数分钟，区间一律为半开区间 [start, end)：
// 首尾相接的两个预约（前一个的结束时刻等于后一个的开始时刻）不算冲突。
// 字符串时刻（HH:MM:SS）只在边界上转换，核心不感知序列化格式。
package scheduling

// Interval 半开区间 [Start, End)，单位为自零点起的分钟数
type Interval struct {
	Start int
	End   int
}

// Overlaps 判断两个半开区间是否相交
// 规则：a.Start < b.End && a.End > b.Start，可覆盖完全包含、
// 部分重叠与完全重合三种情况
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Conflicts 判断提议区间是否与任一已占用区间冲突
func Conflicts(proposed Interval, busy []Interval) bool {
	for _, b := range busy {
		if proposed.Overlaps(b) {
			return true
		}
	}
	return false
}

// Slots 枚举营业窗口内可预约的起始时刻（升序）。
//
// 从 open 开始按 step 步进产生候选时刻 t，要求 [t, t+duration)
// 完整落在 [open, close] 内（t+duration <= close），并且不与任何
// busy 区间相交。枚举严格从 open 起步，不向 step 边界取整。
//
// duration 或 step 非正时返回 nil。
func Slots(open, close, duration, step int, busy []Interval) []int {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var slots []int
	for t := open; t+duration <= close; t += step {
		if !Conflicts(Interval{Start: t, End: t + duration}, busy) {
			slots = append(slots, t)
		}
	}
	return slots
}
