package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/repository"
	"lexigrain_schedule/internal/util"
	"lexigrain_schedule/pkg/logger"
	"lexigrain_schedule/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WeekSyncBackend 计划同步需要的远端能力，由 BackendService 满足
type WeekSyncBackend interface {
	FetchWeek(ctx context.Context, weekID string) (*model.WeekRecord, error)
	PushWeek(ctx context.Context, weekID string, rec model.WeekRecord) error
	CreateSession(ctx context.Context, weekID string, draft model.SessionDraft) error
	UpdateSession(ctx context.Context, weekID, id string, patch model.SessionPatch, updatedAt string) error
	DeleteSession(ctx context.Context, weekID, id string) error
}

// ScheduleService 周学习计划存储。独占持有周表，本地写入即生效，
// 远端同步尽力而为：读取远端优先、任何失败静默退回本地；写入永不回滚。
type ScheduleService struct {
	mu         sync.Mutex
	weekID     string // 当前周游标
	weeks      model.WeekStore
	repo       *repository.ScheduleRepository
	onboarding *repository.OnboardingRepository
	backend    WeekSyncBackend
	lessons    *LessonService
	threshold  int
	async      *syncGroup

	// 测试中可替换
	now   func() time.Time
	newID func() string
}

func NewScheduleService(
	repo *repository.ScheduleRepository,
	onboardingRepo *repository.OnboardingRepository,
	backend WeekSyncBackend,
	lessons *LessonService,
	cfg config.ScheduleConfig,
) *ScheduleService {
	threshold := cfg.SplitThresholdMinutes
	if threshold <= 0 {
		threshold = util.DefaultSplitThresholdMinutes
	}

	s := &ScheduleService{
		weeks:      model.WeekStore{},
		repo:       repo,
		onboarding: onboardingRepo,
		backend:    backend,
		lessons:    lessons,
		threshold:  threshold,
		async:      newSyncGroup(),
		now:        time.Now,
		newID:      uuid.NewString,
	}

	weeks, err := repo.Load(context.Background())
	if err != nil {
		logger.Log.Warn("Stored schedule unreadable, starting empty", zap.Error(err))
		weeks = model.WeekStore{}
	}
	s.weeks = weeks
	s.weekID = util.WeekIDOf(s.now())

	return s
}

// CurrentWeekID 当前周游标
func (s *ScheduleService) CurrentWeekID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekID
}

// GetWeek 纯读取，记录缺失返回空列表，无任何副作用
func (s *ScheduleService) GetWeek(weekID string) []model.ScheduleSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySessions(s.weeks[weekID].Sessions)
}

// Week 读取整条周记录
func (s *ScheduleService) Week(weekID string) (model.WeekRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.weeks[weekID]
	rec.Sessions = copySessions(rec.Sessions)
	return rec, ok
}

// EnsureWeek 远端优先的 cache-aside：拉取成功以 api 来源整周覆盖本地；
// 任何拉取失败都折叠为同一种情况 —— 已有本地记录则沿用，否则按引导偏好
// 生成，生成为空再退到占位数据。不重试，不向上层暴露错误。
func (s *ScheduleService) EnsureWeek(ctx context.Context, weekID string) model.WeekRecord {
	rec, err := s.backend.FetchWeek(ctx, weekID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.weeks[weekID] = *rec
		s.saveLocked(ctx)
		out := *rec
		out.Sessions = copySessions(out.Sessions)
		return out
	}
	logger.Log.Warn("Could not fetch week from backend, using local data",
		zap.String("weekId", weekID), zap.Error(err))

	if existing, ok := s.weeks[weekID]; ok {
		existing.Sessions = copySessions(existing.Sessions)
		return existing
	}

	generated := s.generateFromOnboardingLocked(ctx, weekID)
	if len(generated.Sessions) == 0 {
		generated = s.mockWeekLocked(weekID)
	}
	monitoring.WeeksGenerated.WithLabelValues(string(generated.Source)).Inc()

	s.weeks[weekID] = generated
	s.saveLocked(ctx)

	out := generated
	out.Sessions = copySessions(out.Sessions)
	return out
}

// CurrentWeek 确保当前周存在后返回周号、记录与统计
func (s *ScheduleService) CurrentWeek(ctx context.Context) (string, model.WeekRecord, model.WeekStats) {
	s.mu.Lock()
	weekID := s.weekID
	s.mu.Unlock()

	rec := s.EnsureWeek(ctx, weekID)
	return weekID, rec, statsOf(rec.Sessions)
}

// ShiftWeek 周游标前后移动 delta 周并确保新周就绪，返回新周号
func (s *ScheduleService) ShiftWeek(ctx context.Context, delta int) string {
	s.mu.Lock()
	monday := util.MondayOf(s.weekID)
	newID := util.WeekIDOf(monday.AddDate(0, 0, delta*7))
	s.weekID = newID
	s.mu.Unlock()

	s.EnsureWeek(ctx, newID)
	return newID
}

// AddSession 本地追加即为权威状态，远端创建尽力而为，失败只记日志不回滚
func (s *ScheduleService) AddSession(ctx context.Context, weekID string, draft model.SessionDraft) (model.ScheduleSession, error) {
	status := draft.Status
	if status == "" {
		status = model.SessionPlanned
	}
	if !model.ValidStatus(status) {
		return model.ScheduleSession{}, util.ErrInvalidStatus
	}

	s.mu.Lock()
	nowISO := model.NowISO(s.now())
	session := model.ScheduleSession{
		ID:             s.newID(),
		LessonID:       util.NormalizeLessonID(draft.LessonID),
		Date:           draft.Date,
		PlannedMinutes: draft.PlannedMinutes,
		ActualMinutes:  draft.ActualMinutes,
		Status:         status,
		CreatedAt:      nowISO,
		UpdatedAt:      nowISO,
		FocusTag:       draft.FocusTag,
	}

	rec, ok := s.weeks[weekID]
	if !ok {
		rec = model.WeekRecord{Sessions: []model.ScheduleSession{}, Source: model.SourceMock}
	}
	rec.Sessions = append(rec.Sessions, session)
	s.weeks[weekID] = rec
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)
	s.mu.Unlock()

	remote := draft
	remote.LessonID = session.LessonID
	remote.Status = status
	s.async.run(func(ctx context.Context) {
		if err := s.backend.CreateSession(ctx, weekID, remote); err != nil {
			monitoring.SyncFailures.WithLabelValues("session_create").Inc()
			logger.Log.Warn("Failed to sync session to backend", zap.Error(err))
		}
	})

	return session, nil
}

// UpdateSession 合并补丁并刷新 updatedAt，nil 字段不动
func (s *ScheduleService) UpdateSession(ctx context.Context, weekID, id string, patch model.SessionPatch) (model.ScheduleSession, error) {
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		return model.ScheduleSession{}, util.ErrInvalidStatus
	}

	s.mu.Lock()
	rec, ok := s.weeks[weekID]
	if !ok {
		s.mu.Unlock()
		return model.ScheduleSession{}, util.ErrSessionNotFound
	}

	idx := -1
	for i := range rec.Sessions {
		if rec.Sessions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.ScheduleSession{}, util.ErrSessionNotFound
	}

	session := &rec.Sessions[idx]
	if patch.LessonID != nil {
		session.LessonID = util.NormalizeLessonID(*patch.LessonID)
	}
	if patch.Date != nil {
		session.Date = *patch.Date
	}
	if patch.PlannedMinutes != nil {
		session.PlannedMinutes = *patch.PlannedMinutes
	}
	if patch.ActualMinutes != nil {
		session.ActualMinutes = patch.ActualMinutes
	}
	if patch.Status != nil {
		session.Status = *patch.Status
	}
	if patch.FocusTag != nil {
		session.FocusTag = *patch.FocusTag
	}
	session.UpdatedAt = model.NowISO(s.now())
	updated := *session

	s.weeks[weekID] = rec
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)
	s.mu.Unlock()

	s.async.run(func(ctx context.Context) {
		if err := s.backend.UpdateSession(ctx, weekID, id, patch, updated.UpdatedAt); err != nil {
			monitoring.SyncFailures.WithLabelValues("session_update").Inc()
			logger.Log.Warn("Failed to sync session update to backend", zap.Error(err))
		}
	})

	return updated, nil
}

// SetStatus 状态取值只校验合法性，任意状态间都允许直接切换
func (s *ScheduleService) SetStatus(ctx context.Context, weekID, id string, status model.SessionStatus) (model.ScheduleSession, error) {
	return s.UpdateSession(ctx, weekID, id, model.SessionPatch{Status: &status})
}

func (s *ScheduleService) DeleteSession(ctx context.Context, weekID, id string) error {
	s.mu.Lock()
	rec, ok := s.weeks[weekID]
	if !ok {
		s.mu.Unlock()
		return util.ErrSessionNotFound
	}

	kept := rec.Sessions[:0:0]
	found := false
	for _, sess := range rec.Sessions {
		if sess.ID == id {
			found = true
			continue
		}
		kept = append(kept, sess)
	}
	if !found {
		s.mu.Unlock()
		return util.ErrSessionNotFound
	}

	rec.Sessions = kept
	s.weeks[weekID] = rec
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)
	s.mu.Unlock()

	s.async.run(func(ctx context.Context) {
		if err := s.backend.DeleteSession(ctx, weekID, id); err != nil {
			monitoring.SyncFailures.WithLabelValues("session_delete").Inc()
			logger.Log.Warn("Failed to sync session deletion to backend", zap.Error(err))
		}
	})

	return nil
}

// ReplaceWeek 整周覆盖（UI 整周保存）
func (s *ScheduleService) ReplaceWeek(ctx context.Context, weekID string, sessions []model.ScheduleSession, source model.WeekSource) error {
	for _, sess := range sessions {
		if !model.ValidStatus(sess.Status) {
			return util.ErrInvalidStatus
		}
	}
	if source == "" {
		source = model.SourceAPI
	}

	s.mu.Lock()
	s.weeks[weekID] = model.WeekRecord{Sessions: copySessions(sessions), Source: source}
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)
	s.mu.Unlock()
	return nil
}

// SplitSessions 把当天恰好只有一个且时长达到阈值的会话一分为二。
// targetDate 为空处理整周；threshold 非正值使用配置阈值。
// 当天会话数不是 1、或时长不达标的日子保持原样，因此对已拆分的日子天然幂等。
func (s *ScheduleService) SplitSessions(ctx context.Context, weekID, targetDate string, threshold int) []model.ScheduleSession {
	if threshold <= 0 {
		threshold = s.threshold
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.weeks[weekID]
	if !ok {
		return []model.ScheduleSession{}
	}

	byDate := map[string][]model.ScheduleSession{}
	for _, sess := range rec.Sessions {
		byDate[sess.Date] = append(byDate[sess.Date], sess)
	}

	pool := s.lessons.Pool()
	result := make([]model.ScheduleSession, 0, len(rec.Sessions)+4)
	for _, sess := range rec.Sessions {
		targeted := targetDate == "" || sess.Date == targetDate
		if !targeted || len(byDate[sess.Date]) != 1 || sess.PlannedMinutes < threshold {
			result = append(result, sess)
			continue
		}

		first := sess.PlannedMinutes / 2
		if first > util.SplitFirstMaxMinutes {
			first = util.SplitFirstMaxMinutes
		}
		second := sess.PlannedMinutes - first
		if second < util.SplitSecondMinMinutes {
			// 有意保留的下限：两段之和可能超过原时长
			second = util.SplitSecondMinMinutes
		}

		idx := 0
		for i, lesson := range pool {
			if lesson.ID == sess.LessonID {
				idx = i
				break
			}
		}
		alt := pool[(idx+1)%len(pool)]
		nowISO := model.NowISO(s.now())

		part1 := sess
		part1.ID = s.newID()
		part1.PlannedMinutes = first
		part1.Status = model.SessionPlanned
		part1.FocusTag = "part 1"
		part1.CreatedAt = nowISO
		part1.UpdatedAt = nowISO

		part2 := sess
		part2.ID = s.newID()
		part2.LessonID = util.NormalizeLessonID(alt.ID)
		part2.PlannedMinutes = second
		part2.Status = model.SessionPlanned
		part2.FocusTag = "part 2"
		part2.CreatedAt = nowISO
		part2.UpdatedAt = nowISO

		result = append(result, part1, part2)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].CreatedAt < result[j].CreatedAt
	})

	rec.Sessions = result
	s.weeks[weekID] = rec
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)

	return copySessions(result)
}

// RegenerateWeek 丢弃指定周记录，按引导偏好重新生成（偏好修改后调用）
func (s *ScheduleService) RegenerateWeek(ctx context.Context, weekID string) model.WeekRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	generated := s.generateFromOnboardingLocked(ctx, weekID)
	monitoring.WeeksGenerated.WithLabelValues(string(generated.Source)).Inc()

	s.weeks[weekID] = generated
	s.saveLocked(ctx)
	s.pushWeekLocked(weekID)

	out := generated
	out.Sessions = copySessions(out.Sessions)
	return out
}

// Stats 周统计，无会话时完成率为 0
func (s *ScheduleService) Stats(weekID string) model.WeekStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statsOf(s.weeks[weekID].Sessions)
}

// Flush 等待所有进行中的远端推送结束，关机时调用
func (s *ScheduleService) Flush() {
	s.async.wait()
}

// generateFromOnboardingLocked 按引导偏好合成一周计划。偏好缺失或损坏时
// 降级为默认值（每日 1 小时、周一到周五）。同一天序的课程轮换是确定性的。
func (s *ScheduleService) generateFromOnboardingLocked(ctx context.Context, weekID string) model.WeekRecord {
	prefs := model.DefaultOnboarding()
	if loaded, err := s.onboarding.Load(ctx); err != nil {
		logger.Log.Warn("Onboarding draft unreadable, generating with defaults", zap.Error(err))
	} else if loaded != nil {
		prefs = *loaded
		if prefs.DailyHours <= 0 {
			prefs.DailyHours = 1
		}
		if prefs.SchedulePreset == "" {
			if prefs.PreferredTime != "" {
				prefs.SchedulePreset = prefs.PreferredTime
			} else {
				prefs.SchedulePreset = "Evening"
			}
		}
	}

	dayNames := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	active := map[string]bool{}
	if prefs.SchedulePreset == "Custom" && len(prefs.DaysOfWeek) > 0 {
		for _, d := range prefs.DaysOfWeek {
			active[d] = true
		}
	} else {
		for _, d := range dayNames[:5] {
			active[d] = true
		}
	}

	dailyMinutes := int(prefs.DailyHours * 60)
	monday := util.MondayOf(weekID)
	pool := s.lessons.Pool()
	sessions := []model.ScheduleSession{}

	for i := 0; i < 7; i++ {
		if !active[dayNames[i]] {
			continue
		}
		date := util.ISODate(monday.AddDate(0, 0, i))
		lesson := pool[i%len(pool)]

		if prefs.SplitSessions && dailyMinutes >= util.DefaultSplitThresholdMinutes {
			first := dailyMinutes / 2
			if first > util.SplitFirstMaxMinutes {
				first = util.SplitFirstMaxMinutes
			}
			second := dailyMinutes - first
			if second < util.SplitSecondMinMinutes {
				second = util.SplitSecondMinMinutes
			}
			alt := pool[(i+1)%len(pool)]
			sessions = append(sessions,
				s.newSessionLocked(lesson.ID, date, first, "part 1"),
				s.newSessionLocked(alt.ID, date, second, "part 2"),
			)
			continue
		}

		tag := "core"
		if i == 6 {
			tag = "review"
		}
		sessions = append(sessions, s.newSessionLocked(lesson.ID, date, dailyMinutes, tag))
	}

	return model.WeekRecord{Sessions: sessions, Source: model.SourceOnboarding}
}

// mockWeekLocked 生成兜底占位数据：从周一起最多 3 个 45 分钟会话
func (s *ScheduleService) mockWeekLocked(weekID string) model.WeekRecord {
	monday := util.MondayOf(weekID)
	pool := s.lessons.Pool()

	count := util.MockSessionCount
	if count > len(pool) {
		count = len(pool)
	}

	sessions := make([]model.ScheduleSession, 0, count)
	for i := 0; i < count; i++ {
		date := util.ISODate(monday.AddDate(0, 0, i))
		sessions = append(sessions, s.newSessionLocked(pool[i].ID, date, util.MockSessionMinutes, "mock"))
	}
	return model.WeekRecord{Sessions: sessions, Source: model.SourceMock}
}

func (s *ScheduleService) newSessionLocked(lessonID, date string, minutes int, tag string) model.ScheduleSession {
	nowISO := model.NowISO(s.now())
	return model.ScheduleSession{
		ID:             s.newID(),
		LessonID:       util.NormalizeLessonID(lessonID),
		Date:           date,
		PlannedMinutes: minutes,
		Status:         model.SessionPlanned,
		CreatedAt:      nowISO,
		UpdatedAt:      nowISO,
		FocusTag:       tag,
	}
}

// saveLocked 本地持久化整表，失败只记日志：内存状态仍是权威
func (s *ScheduleService) saveLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.weeks); err != nil {
		logger.Log.Error("Failed to persist schedule store", zap.Error(err))
	}
}

// pushWeekLocked 整周推送到后端，尽力而为
func (s *ScheduleService) pushWeekLocked(weekID string) {
	rec, ok := s.weeks[weekID]
	if !ok {
		return
	}
	snapshot := rec
	snapshot.Sessions = copySessions(rec.Sessions)

	s.async.run(func(ctx context.Context) {
		if err := s.backend.PushWeek(ctx, weekID, snapshot); err != nil {
			monitoring.SyncFailures.WithLabelValues("week_push").Inc()
			logger.Log.Warn("Failed to sync week to backend", zap.String("weekId", weekID), zap.Error(err))
		}
	})
}

func statsOf(sessions []model.ScheduleSession) model.WeekStats {
	stats := model.WeekStats{}
	for _, sess := range sessions {
		stats.PlannedMinutes += sess.PlannedMinutes
		stats.SessionsPlanned++
		if sess.Status == model.SessionDone {
			stats.SessionsCompleted++
			if sess.ActualMinutes != nil {
				stats.CompletedMinutes += *sess.ActualMinutes
			} else {
				stats.CompletedMinutes += sess.PlannedMinutes
			}
		}
	}
	if stats.SessionsPlanned > 0 {
		stats.CompletionRate = float64(stats.SessionsCompleted) / float64(stats.SessionsPlanned)
	}
	return stats
}

func copySessions(sessions []model.ScheduleSession) []model.ScheduleSession {
	out := make([]model.ScheduleSession, len(sessions))
	copy(out, sessions)
	return out
}
