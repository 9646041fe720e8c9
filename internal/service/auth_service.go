package service

import (
	"context"
	"time"

	"lexigrain_schedule/internal/repository"
	"lexigrain_schedule/internal/util"
	"lexigrain_schedule/pkg/logger"

	"go.uber.org/zap"
)

// AuthService 登录代理：凭据透传给后端，换回的 JWT 缓存在本地存储，
// 之后的同步推送按需携带。本服务不持有签名密钥，只做过期检查。
type AuthService struct {
	repo    *repository.AuthRepository
	backend *BackendService
	now     func() time.Time
}

func NewAuthService(repo *repository.AuthRepository, backend *BackendService) *AuthService {
	return &AuthService{repo: repo, backend: backend, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.repo.SaveToken(ctx, token); err != nil {
		return err
	}
	logger.Log.Info("Logged in to backend", zap.String("email", email))
	return nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.repo.ClearToken(ctx)
}

// BearerToken 供 BackendService 使用的令牌来源。过期或损坏的令牌不携带，
// 随后的调用以匿名身份降级进行。
func (s *AuthService) BearerToken(ctx context.Context) string {
	token, err := s.repo.Token(ctx)
	if err != nil {
		logger.Log.Warn("Failed to read cached token", zap.Error(err))
		return ""
	}
	if !util.TokenUsable(token, s.now()) {
		return ""
	}
	return token
}

type AuthStatus struct {
	LoggedIn  bool   `json:"loggedIn"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func (s *AuthService) Status(ctx context.Context) AuthStatus {
	token, err := s.repo.Token(ctx)
	if err != nil || !util.TokenUsable(token, s.now()) {
		return AuthStatus{}
	}
	status := AuthStatus{LoggedIn: true}
	if exp, err := util.TokenExpiry(token); err == nil && !exp.IsZero() {
		status.ExpiresAt = exp.UTC().Format(time.RFC3339)
	}
	return status
}
