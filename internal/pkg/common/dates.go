package common

import (
	"time"
)

// 接受的日期格式（ISO-8601）
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseISODate 解析 ISO-8601 日期字串並正規化為當地時區的午夜。
// 解析失敗時回傳 ErrInvalidDate，必須在任何其他處理之前檢查。
func ParseISODate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrMissingWeekStart
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Midnight 將時間截斷到當地時區的午夜
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekEnd 回傳一週窗口的結束邊界（不含），即 weekStart + 7 天
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7)
}
