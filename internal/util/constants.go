package util

// 本地存储键。lexigrain: 为当前品牌前缀；lexicon: 为旧品牌遗留键，
// 首次读取时若新键缺失则从旧键迁移并镜像写回新键。
const (
	StorageKeySchedule     = "lexigrain:schedule:v1"
	LegacyKeySchedule      = "lexicon:schedule:v1"
	StorageKeyOnboarding   = "lexigrain:onboarding"
	LegacyKeyOnboarding    = "lexicon:onboarding"
	StorageKeyAuthToken    = "lexigrain:authToken"
	StorageKeyLessonsCache = "lexigrain:lessons:cache"
)

// 计划生成相关默认值
const (
	DefaultSplitThresholdMinutes = 120 // 达到该时长的单会话才会被拆分
	SplitFirstMaxMinutes         = 60  // 拆分后第一段上限
	SplitSecondMinMinutes        = 30  // 拆分后第二段下限
	MockSessionMinutes           = 45
	MockSessionCount             = 3
)
