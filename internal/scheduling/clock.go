package scheduling

import "fmt"

// MinutesPerDay 一天的总分钟数，挂钟时刻的合法区间为 [0, 1440)
const MinutesPerDay = 24 * 60

// ParseClock 将 "HH:MM" 或 "HH:MM:SS" 解析为自零点起的分钟数
// 秒位仅做格式校验，不参与分钟运算
func ParseClock(s string) (int, error) {
	var h, m, sec int

	switch len(s) {
	case 5: // HH:MM
		if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
			return 0, fmt.Errorf("无效的时刻 %q: %w", s, err)
		}
	case 8: // HH:MM:SS
		if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &h, &m, &sec); err != nil {
			return 0, fmt.Errorf("无效的时刻 %q: %w", s, err)
		}
	default:
		return 0, fmt.Errorf("无效的时刻 %q: 期望 HH:MM 或 HH:MM:SS", s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("无效的时刻 %q: 超出范围", s)
	}

	return h*60 + m, nil
}

// FormatClock 将自零点起的分钟数格式化为 "HH:MM:SS"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
