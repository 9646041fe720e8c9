package util

import (
	"testing"
	"time"
)

func TestWeekIDOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		date string
		want string
	}{
		{"2024-01-01", "2024-W01"}, // 周一，第 1 周
		{"2024-01-04", "2024-W01"},
		{"2024-01-07", "2024-W01"}, // 周日仍属第 1 周
		{"2024-01-08", "2024-W02"},
		{"2021-01-01", "2020-W53"}, // 周五，归上一年最后一周
		{"2021-01-03", "2020-W53"},
		{"2021-01-04", "2021-W01"},
		{"2023-01-01", "2022-W52"}, // 周日
		{"2020-12-31", "2020-W53"},
		{"2015-12-28", "2015-W53"}, // 53 周年份
		{"2024-12-30", "2025-W01"}, // 周一已进入下一年第 1 周
		{"2024-06-15", "2024-W24"},
	}

	for _, c := range cases {
		d, err := time.Parse(DateFormat, c.date)
		if err != nil {
			t.Fatalf("parse %s: %v", c.date, err)
		}
		if got := WeekIDOf(d); got != c.want {
			t.Errorf("WeekIDOf(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestMondayOfRoundTrip(t *testing.T) {
	t.Parallel()
	// 周号 → 周一 → 周号 必须闭环
	for _, weekID := range []string{"2024-W01", "2020-W53", "2021-W01", "2024-W24", "2025-W01", "2015-W53"} {
		monday := MondayOf(weekID)
		if monday.Weekday() != time.Monday {
			t.Errorf("MondayOf(%s).Weekday() = %v, want Monday", weekID, monday.Weekday())
		}
		if got := WeekIDOf(monday); got != weekID {
			t.Errorf("WeekIDOf(MondayOf(%s)) = %s", weekID, got)
		}
	}
}

func TestMondayOfInvalidFallsBackToCurrentWeek(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "garbage", "2024-W1", "24-W01", "2024W01"} {
		got := MondayOf(bad)
		want := StartOfISOWeek(time.Now())
		if !got.Equal(want) {
			t.Errorf("MondayOf(%q) = %v, want current week monday %v", bad, got, want)
		}
	}
}

func TestValidWeekID(t *testing.T) {
	t.Parallel()
	valid := []string{"2024-W01", "2020-W53", "1999-W07"}
	invalid := []string{"", "2024-W1", "2024-w01", "2024-W001", "abcd-W01", "2024-W01x"}

	for _, id := range valid {
		if !ValidWeekID(id) {
			t.Errorf("ValidWeekID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if ValidWeekID(id) {
			t.Errorf("ValidWeekID(%q) = true, want false", id)
		}
	}
}

func TestStartOfISOWeek(t *testing.T) {
	t.Parallel()
	// 周日归本周（周一起算）
	sunday := time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC)
	got := StartOfISOWeek(sunday)
	if got.Weekday() != time.Monday || got.Day() != 1 {
		t.Fatalf("StartOfISOWeek(sunday) = %v, want 2024-01-01", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestNormalizeLessonID(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"lesson-3":      "lesson-3",
		"3":             "lesson-3",
		"42":            "lesson-42",
		"custom-lesson": "custom-lesson",
		"v2":            "v2",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeLessonID(in); got != want {
			t.Errorf("NormalizeLessonID(%q) = %q, want %q", in, got, want)
		}
	}
}
