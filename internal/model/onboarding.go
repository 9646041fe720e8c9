package model

// OnboardingPreferences 用户引导阶段采集的学习偏好，只读输入，用于生成每周初始计划
// swagger:model
type OnboardingPreferences struct {
	Goals           []string `json:"goals"`
	Skills          []string `json:"skills"`
	DailyHours      float64  `json:"dailyHours"`               // 每日学习时长（小时，支持 0.5 步进）
	PreferredTime   string   `json:"preferredTime,omitempty"`  // 旧字段，展示用
	SchedulePreset  string   `json:"schedulePreset"`           // Morning | Afternoon | Evening | Late Night | Custom
	DaysOfWeek      []string `json:"daysOfWeek"`               // preset 为 Custom 时生效
	SpecificTime    string   `json:"specificTime,omitempty"`   // HH:mm
	ReminderEnabled bool     `json:"reminderEnabled,omitempty"`
	SplitSessions   bool     `json:"splitSessionsPreferred,omitempty"`
	CompletedAt     string   `json:"completedAt,omitempty"` // ISO
}

// DefaultOnboarding 偏好缺失或损坏时的兜底值
func DefaultOnboarding() OnboardingPreferences {
	return OnboardingPreferences{
		DailyHours:     1,
		SchedulePreset: "Evening",
	}
}
