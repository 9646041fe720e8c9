package repository

import (
	"context"
	"errors"

	"lexigrain_schedule/internal/util"
)

// BlobStore 仓库层需要的最小存储能力，由 service.StorageProvider 满足
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// loadVersioned 按版本表读取：先读当前键，缺失时逐个尝试旧键并把命中的内容镜像到当前键。
// 旧键本身保留不动，镜像失败不阻塞读取。
func loadVersioned(ctx context.Context, store BlobStore, key string, legacyKeys ...string) (string, error) {
	raw, err := store.Get(ctx, key)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, util.ErrKeyNotFound) {
		return "", err
	}

	for _, legacy := range legacyKeys {
		raw, err = store.Get(ctx, legacy)
		if err == nil {
			_ = store.Set(ctx, key, raw)
			return raw, nil
		}
		if !errors.Is(err, util.ErrKeyNotFound) {
			return "", err
		}
	}
	return "", util.ErrKeyNotFound
}
