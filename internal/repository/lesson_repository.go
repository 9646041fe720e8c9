package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
)

// LessonRepository 后端课程目录的本地镜像，离线时兜底
type LessonRepository struct {
	store BlobStore
}

func NewLessonRepository(store BlobStore) *LessonRepository {
	return &LessonRepository{store: store}
}

func (r *LessonRepository) LoadCache(ctx context.Context) ([]model.Lesson, error) {
	raw, err := r.store.Get(ctx, util.StorageKeyLessonsCache)
	if err != nil {
		if errors.Is(err, util.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var lessons []model.Lesson
	if err := json.Unmarshal([]byte(raw), &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonRepository) SaveCache(ctx context.Context, lessons []model.Lesson) error {
	raw, err := json.Marshal(lessons)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, util.StorageKeyLessonsCache, string(raw))
}
