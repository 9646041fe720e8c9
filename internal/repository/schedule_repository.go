package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
)

// ScheduleRepository 整个周计划表序列化为一个 blob 持久化
type ScheduleRepository struct {
	store BlobStore
}

func NewScheduleRepository(store BlobStore) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// Load 读整表，键缺失返回空表
func (r *ScheduleRepository) Load(ctx context.Context) (model.WeekStore, error) {
	raw, err := loadVersioned(ctx, r.store, util.StorageKeySchedule, util.LegacyKeySchedule)
	if err != nil {
		if errors.Is(err, util.ErrKeyNotFound) {
			return model.WeekStore{}, nil
		}
		return nil, err
	}

	var weeks model.WeekStore
	if err := json.Unmarshal([]byte(raw), &weeks); err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = model.WeekStore{}
	}
	return weeks, nil
}

func (r *ScheduleRepository) Save(ctx context.Context, weeks model.WeekStore) error {
	raw, err := json.Marshal(weeks)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, util.StorageKeySchedule, string(raw))
}
