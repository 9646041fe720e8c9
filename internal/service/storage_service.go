package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
	"lexigrain_schedule/pkg/database"

	"github.com/go-redis/redis/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gorm.io/gorm"
)

// StorageProvider 本地持久化键值存储端口，一个 key 对应一个序列化 blob。
// 浏览器 localStorage 的服务端等价物，按 storage.type 选择后端。
type StorageProvider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// NewStorageProvider 按配置构造存储后端，未知类型回退到 local
func NewStorageProvider(cfg *config.Config) (StorageProvider, error) {
	switch cfg.Storage.Type {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &RedisStorageProvider{Client: rdb}, nil
	case "mysql":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return &MySQLStorageProvider{DB: db}, nil
	case "minio":
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return &MinioStorageProvider{Client: client, Bucket: cfg.Storage.MinioBucket}, nil
	default:
		return &LocalStorageProvider{Path: cfg.Storage.LocalPath}, nil
	}
}

// LocalStorageProvider 本地文件实现，一个 key 一个文件
type LocalStorageProvider struct {
	Path string
}

func (p *LocalStorageProvider) filename(key string) string {
	// 键里带冒号，落盘前替换掉
	return filepath.Join(p.Path, strings.ReplaceAll(key, ":", "_")+".json")
}

func (p *LocalStorageProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(p.filename(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", util.ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (p *LocalStorageProvider) Set(ctx context.Context, key, value string) error {
	if err := os.MkdirAll(p.Path, 0755); err != nil {
		return err
	}
	return os.WriteFile(p.filename(key), []byte(value), 0644)
}

func (p *LocalStorageProvider) Delete(ctx context.Context, key string) error {
	err := os.Remove(p.filename(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RedisStorageProvider redis 实现
type RedisStorageProvider struct {
	Client *redis.Client
}

func (p *RedisStorageProvider) Get(ctx context.Context, key string) (string, error) {
	val, err := p.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", util.ErrKeyNotFound
	}
	return val, err
}

func (p *RedisStorageProvider) Set(ctx context.Context, key, value string) error {
	return p.Client.Set(ctx, key, value, 0).Err()
}

func (p *RedisStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Client.Del(ctx, key).Err()
}

// MySQLStorageProvider mysql 键值表实现
type MySQLStorageProvider struct {
	DB *gorm.DB
}

func (p *MySQLStorageProvider) Get(ctx context.Context, key string) (string, error) {
	var entry model.StorageEntry
	err := p.DB.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (p *MySQLStorageProvider) Set(ctx context.Context, key, value string) error {
	entry := model.StorageEntry{Key: key, Value: value}
	return p.DB.WithContext(ctx).Save(&entry).Error
}

func (p *MySQLStorageProvider) Delete(ctx context.Context, key string) error {
	return p.DB.WithContext(ctx).Delete(&model.StorageEntry{}, "`key` = ?", key).Error
}

// MinioStorageProvider 对象存储实现，一个 key 一个对象
type MinioStorageProvider struct {
	Client *minio.Client
	Bucket string
}

func (p *MinioStorageProvider) Get(ctx context.Context, key string) (string, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return "", util.ErrKeyNotFound
		}
		return "", fmt.Errorf("minio get %s: %w", key, err)
	}
	return string(data), nil
}

func (p *MinioStorageProvider) Set(ctx context.Context, key, value string) error {
	reader := bytes.NewReader([]byte(value))
	_, err := p.Client.PutObject(ctx, p.Bucket, key, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (p *MinioStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Bucket, key, minio.RemoveObjectOptions{})
}
