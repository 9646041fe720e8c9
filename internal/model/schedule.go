package model

import "time"

// SessionStatus 学习会话状态（不限制状态间转换，任意状态可直接切换）
type SessionStatus string

const (
	SessionPlanned    SessionStatus = "planned"
	SessionInProgress SessionStatus = "in-progress"
	SessionDone       SessionStatus = "done"
	SessionSkipped    SessionStatus = "skipped"
)

// ValidStatus 仅校验取值合法性，不校验转换路径
func ValidStatus(s SessionStatus) bool {
	switch s {
	case SessionPlanned, SessionInProgress, SessionDone, SessionSkipped:
		return true
	}
	return false
}

// WeekSource 周记录的数据来源标记
type WeekSource string

const (
	SourceAPI        WeekSource = "api"        // 后端返回
	SourceOnboarding WeekSource = "onboarding" // 根据引导偏好本地生成
	SourceMock       WeekSource = "mock"       // 占位数据
)

// ScheduleSession 一次计划或已完成的学习会话
// swagger:model
type ScheduleSession struct {
	ID             string        `json:"id"`
	LessonID       string        `json:"lessonId"`
	Date           string        `json:"date"` // yyyy-mm-dd
	PlannedMinutes int           `json:"plannedMinutes"`
	ActualMinutes  *int          `json:"actualMinutes,omitempty"`
	Status         SessionStatus `json:"status"`
	CreatedAt      string        `json:"createdAt"` // ISO 时间戳
	UpdatedAt      string        `json:"updatedAt"`
	FocusTag       string        `json:"focusTag,omitempty"`
}

// WeekRecord 某一 ISO 周的会话列表及其来源
// swagger:model
type WeekRecord struct {
	Sessions []ScheduleSession `json:"sessions"`
	Source   WeekSource        `json:"source"`
}

// WeekStore 按周 ID（YYYY-Www）索引的完整本地存储结构，整体序列化为一个 blob
type WeekStore map[string]WeekRecord

// SessionDraft 新建会话的输入，id 与时间戳由存储层生成
type SessionDraft struct {
	LessonID       string        `json:"lessonId" binding:"required"`
	Date           string        `json:"date" binding:"required"`
	PlannedMinutes int           `json:"plannedMinutes" binding:"required,gt=0"`
	ActualMinutes  *int          `json:"actualMinutes,omitempty"`
	Status         SessionStatus `json:"status,omitempty"`
	FocusTag       string        `json:"focusTag,omitempty"`
}

// SessionPatch 部分更新，nil 字段保持不变
type SessionPatch struct {
	LessonID       *string        `json:"lessonId,omitempty"`
	Date           *string        `json:"date,omitempty"`
	PlannedMinutes *int           `json:"plannedMinutes,omitempty"`
	ActualMinutes  *int           `json:"actualMinutes,omitempty"`
	Status         *SessionStatus `json:"status,omitempty"`
	FocusTag       *string        `json:"focusTag,omitempty"`
}

// WeekStats 周统计
// swagger:model
type WeekStats struct {
	PlannedMinutes    int     `json:"plannedMinutes"`
	CompletedMinutes  int     `json:"completedMinutes"`
	SessionsPlanned   int     `json:"sessionsPlanned"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	CompletionRate    float64 `json:"completionRate"`
}

// WeekPayload 与后端交换的整周数据
type WeekPayload struct {
	WeekID   string            `json:"weekId"`
	Sessions []ScheduleSession `json:"sessions"`
	Source   WeekSource        `json:"source"`
}

// ISOTimeFormat 与前端 Date.toISOString 一致的毫秒级 UTC 格式
const ISOTimeFormat = "2006-01-02T15:04:05.000Z"

func NowISO(now time.Time) string {
	return now.UTC().Format(ISOTimeFormat)
}
