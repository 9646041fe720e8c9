package service

import (
	"context"
	"time"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/repository"
	"lexigrain_schedule/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const lessonCacheKey = "lessons"

// LessonService 课程目录。计划生成永远使用内置轮换池保证确定性；
// 对外列表优先返回后端目录，离线时退回本地镜像，再退回内置池。
type LessonService struct {
	repo    *repository.LessonRepository
	backend *BackendService
	cache   *gocache.Cache
}

func NewLessonService(repo *repository.LessonRepository, backend *BackendService) *LessonService {
	return &LessonService{
		repo:    repo,
		backend: backend,
		cache:   gocache.New(10*time.Minute, 30*time.Minute),
	}
}

// Pool 生成计划用的固定轮换池
func (s *LessonService) Pool() []model.Lesson {
	return model.DefaultLessonPool()
}

func (s *LessonService) List(ctx context.Context) []model.Lesson {
	if cached, ok := s.cache.Get(lessonCacheKey); ok {
		return cached.([]model.Lesson)
	}

	lessons, err := s.backend.FetchLessons(ctx)
	if err == nil && len(lessons) > 0 {
		s.cache.Set(lessonCacheKey, lessons, gocache.DefaultExpiration)
		if err := s.repo.SaveCache(ctx, lessons); err != nil {
			logger.Log.Warn("Failed to mirror lessons cache", zap.Error(err))
		}
		return lessons
	}
	if err != nil {
		logger.Log.Warn("Could not fetch lessons from backend, using local data", zap.Error(err))
	}

	if mirrored, err := s.repo.LoadCache(ctx); err == nil && len(mirrored) > 0 {
		s.cache.Set(lessonCacheKey, mirrored, gocache.DefaultExpiration)
		return mirrored
	}

	return s.Pool()
}
