package service

import (
	"context"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/repository"
	"lexigrain_schedule/pkg/logger"
	"lexigrain_schedule/pkg/monitoring"

	"go.uber.org/zap"
)

// OnboardingService 引导偏好的读写。读取远端优先，失败退回本地草稿；
// 写入先落本地，再尽力推送远端。
type OnboardingService struct {
	repo    *repository.OnboardingRepository
	backend *BackendService
	async   *syncGroup
}

func NewOnboardingService(repo *repository.OnboardingRepository, backend *BackendService) *OnboardingService {
	return &OnboardingService{repo: repo, backend: backend, async: newSyncGroup()}
}

func (s *OnboardingService) Get(ctx context.Context) model.OnboardingPreferences {
	if prefs, err := s.backend.FetchOnboarding(ctx); err == nil && prefs != nil {
		if err := s.repo.Save(ctx, *prefs); err != nil {
			logger.Log.Warn("Failed to mirror onboarding locally", zap.Error(err))
		}
		return *prefs
	} else if err != nil {
		logger.Log.Warn("Could not fetch onboarding from backend, using local draft", zap.Error(err))
	}

	prefs, err := s.repo.Load(ctx)
	if err != nil {
		logger.Log.Warn("Local onboarding draft unreadable, falling back to defaults", zap.Error(err))
		return model.DefaultOnboarding()
	}
	if prefs == nil {
		return model.DefaultOnboarding()
	}
	return *prefs
}

func (s *OnboardingService) Save(ctx context.Context, prefs model.OnboardingPreferences) error {
	if err := s.repo.Save(ctx, prefs); err != nil {
		return err
	}
	s.async.run(func(ctx context.Context) {
		if err := s.backend.SaveOnboarding(ctx, prefs); err != nil {
			monitoring.SyncFailures.WithLabelValues("onboarding_save").Inc()
			logger.Log.Warn("Failed to sync onboarding to backend", zap.Error(err))
		}
	})
	return nil
}

// Flush 等待进行中的推送结束，关机时调用
func (s *OnboardingService) Flush() {
	s.async.wait()
}
