package repository

import (
	"context"
	"errors"

	"lexigrain_schedule/internal/util"
)

// AuthRepository 缓存后端签发的 JWT，登出或过期后清除
type AuthRepository struct {
	store BlobStore
}

func NewAuthRepository(store BlobStore) *AuthRepository {
	return &AuthRepository{store: store}
}

func (r *AuthRepository) Token(ctx context.Context) (string, error) {
	token, err := r.store.Get(ctx, util.StorageKeyAuthToken)
	if errors.Is(err, util.ErrKeyNotFound) {
		return "", nil
	}
	return token, err
}

func (r *AuthRepository) SaveToken(ctx context.Context, token string) error {
	return r.store.Set(ctx, util.StorageKeyAuthToken, token)
}

func (r *AuthRepository) ClearToken(ctx context.Context) error {
	return r.store.Delete(ctx, util.StorageKeyAuthToken)
}
