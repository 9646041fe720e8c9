package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
)

// OnboardingRepository 引导偏好的本地草稿，只作为计划生成的种子输入
type OnboardingRepository struct {
	store BlobStore
}

func NewOnboardingRepository(store BlobStore) *OnboardingRepository {
	return &OnboardingRepository{store: store}
}

// Load 键缺失返回 (nil, nil)，内容损坏返回解析错误，由调用方降级到默认偏好
func (r *OnboardingRepository) Load(ctx context.Context) (*model.OnboardingPreferences, error) {
	raw, err := loadVersioned(ctx, r.store, util.StorageKeyOnboarding, util.LegacyKeyOnboarding)
	if err != nil {
		if errors.Is(err, util.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var prefs model.OnboardingPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *OnboardingRepository) Save(ctx context.Context, prefs model.OnboardingPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, util.StorageKeyOnboarding, string(raw))
}
