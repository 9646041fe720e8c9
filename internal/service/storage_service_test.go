package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/util"
)

func TestLocalStorageProviderRoundTrip(t *testing.T) {
	t.Parallel()
	p := &LocalStorageProvider{Path: t.TempDir()}
	ctx := context.Background()

	if _, err := p.Get(ctx, "lexigrain:schedule:v1"); !errors.Is(err, util.ErrKeyNotFound) {
		t.Fatalf("missing key err = %v, want ErrKeyNotFound", err)
	}

	if err := p.Set(ctx, "lexigrain:schedule:v1", `{"weeks":{}}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, err := p.Get(ctx, "lexigrain:schedule:v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != `{"weeks":{}}` {
		t.Fatalf("value = %q", val)
	}

	if err := p.Delete(ctx, "lexigrain:schedule:v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, "lexigrain:schedule:v1"); !errors.Is(err, util.ErrKeyNotFound) {
		t.Fatalf("deleted key err = %v, want ErrKeyNotFound", err)
	}

	// 删除不存在的键不算错误
	if err := p.Delete(ctx, "lexigrain:schedule:v1"); err != nil {
		t.Fatalf("delete missing key: %v", err)
	}
}

func TestLocalStorageProviderFilenames(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := &LocalStorageProvider{Path: dir}

	if err := p.Set(context.Background(), "lexigrain:authToken", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// 冒号替换为下划线落盘
	if _, err := os.Stat(filepath.Join(dir, "lexigrain_authToken.json")); err != nil {
		t.Fatalf("expected sanitized filename: %v", err)
	}
}

func TestLocalStorageProviderCreatesDir(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	p := &LocalStorageProvider{Path: dir}

	if err := p.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set should create directories: %v", err)
	}
}

func TestNewStorageProviderDefaultsToLocal(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	cfg.Storage.Type = "something-unknown"
	cfg.Storage.LocalPath = t.TempDir()

	p, err := NewStorageProvider(cfg)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, ok := p.(*LocalStorageProvider); !ok {
		t.Fatalf("expected local provider, got %T", p)
	}
}
