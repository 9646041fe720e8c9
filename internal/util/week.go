package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateFormat 会话日期格式 YYYY-MM-DD
const DateFormat = "2006-01-02"

var weekIDPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// WeekIDOf 计算 ISO-8601 周号，形如 2024-W01。先把日期移到所在周的
// 周四再取年份与序号，保证跨年边界正确（2021-01-01 属于 2020-W53）。
func WeekIDOf(t time.Time) string {
	u := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	day := int(u.Weekday())
	if day == 0 {
		day = 7
	}
	thursday := u.AddDate(0, 0, 4-day)
	jan1 := time.Date(thursday.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	week := int(thursday.Sub(jan1).Hours()/24)/7 + 1
	return fmt.Sprintf("%d-W%02d", thursday.Year(), week)
}

// ValidWeekID 校验 YYYY-Www 形式的周号
func ValidWeekID(weekID string) bool {
	return weekIDPattern.MatchString(weekID)
}

// MondayOf 返回周号对应周一的本地零点。ISO 规则下第 1 周必含 1 月 4 日，
// 以它为锚推算。周号非法时退回当前周的周一，调用方不会拿到零值。
func MondayOf(weekID string) time.Time {
	m := weekIDPattern.FindStringSubmatch(weekID)
	if m == nil {
		return StartOfISOWeek(time.Now())
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])

	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.Local)
	day := int(jan4.Weekday())
	if day == 0 {
		day = 7
	}
	return jan4.AddDate(0, 0, 1-day+(week-1)*7)
}

// StartOfISOWeek t 所在 ISO 周的周一零点，保留 t 的时区
func StartOfISOWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	monday := t.AddDate(0, 0, 1-day)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// ISODate 格式化为 YYYY-MM-DD
func ISODate(t time.Time) string {
	return t.Format(DateFormat)
}

var numericLessonID = regexp.MustCompile(`^\d+$`)

// NormalizeLessonID 纯数字课程 ID 补全 lesson- 前缀，其余原样返回
func NormalizeLessonID(id string) string {
	if numericLessonID.MatchString(id) {
		return "lesson-" + id
	}
	return id
}
