package scheduling

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"18:00:00", 1080, false},
		{"18:30", 1110, false},
		{"00:00:00", 0, false},
		{"23:59:59", 1439, false},
		{"09:05", 545, false},
		{"24:00:00", 0, true},
		{"18:60:00", 0, true},
		{"18:00:61", 0, true},
		{"banana", 0, true},
		{"", 0, true},
		{"18", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) 期望报错，实际得到 %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) 不应报错: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d，期望 %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1080, "18:00:00"},
		{1110, "18:30:00"},
		{0, "00:00:00"},
		{545, "09:05:00"},
		{1439, "23:59:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q，期望 %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 17 {
		got, err := ParseClock(FormatClock(m))
		if err != nil {
			t.Fatalf("回环解析 %d 失败: %v", m, err)
		}
		if got != m {
			t.Fatalf("回环 %d → %q → %d", m, FormatClock(m), got)
		}
	}
}
