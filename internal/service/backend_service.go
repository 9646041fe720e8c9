package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
)

// BackendService Lexigrain 后端的 REST 客户端。所有失败（网络错误、非 2xx、
// 响应解析失败、超时）对调用方不可区分，统一折叠为 util.ErrBackendUnavailable。
type BackendService struct {
	mu      sync.RWMutex
	baseURL string
	client  *http.Client
	tokenFn func(ctx context.Context) string // 返回空串表示匿名调用
}

func NewBackendService(cfg config.BackendConfig) *BackendService {
	return &BackendService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

// SetTokenSource 注入令牌来源（认证服务），必须在路由开始服务前调用
func (s *BackendService) SetTokenSource(fn func(ctx context.Context) string) {
	s.tokenFn = fn
}

// UpdateConfig 配置热更新回调。换入新 client 而不是改旧 client 的超时，
// 避免与飞行中的请求竞争。
func (s *BackendService) UpdateConfig(cfg config.BackendConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	s.client = &http.Client{Timeout: cfg.Timeout()}
}

func (s *BackendService) url(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL + path
}

func (s *BackendService) httpClient() *http.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *BackendService) request(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode %s %s: %v", util.ErrBackendUnavailable, method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.url(path), reader)
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.tokenFn != nil {
		if token := s.tokenFn(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", util.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: status %d", util.ErrBackendUnavailable, method, path, resp.StatusCode)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", util.ErrBackendUnavailable, method, path, err)
	}
	return nil
}

func (s *BackendService) FetchWeek(ctx context.Context, weekID string) (*model.WeekRecord, error) {
	var payload model.WeekPayload
	if err := s.request(ctx, http.MethodGet, "/schedule/weeks/"+weekID, nil, &payload); err != nil {
		return nil, err
	}
	sessions := payload.Sessions
	if sessions == nil {
		sessions = []model.ScheduleSession{}
	}
	return &model.WeekRecord{Sessions: sessions, Source: model.SourceAPI}, nil
}

func (s *BackendService) PushWeek(ctx context.Context, weekID string, rec model.WeekRecord) error {
	payload := model.WeekPayload{WeekID: weekID, Sessions: rec.Sessions, Source: rec.Source}
	return s.request(ctx, http.MethodPut, "/schedule/weeks/"+weekID, payload, nil)
}

// CreateSession 创建载荷不携带 id 与时间戳，由后端自行生成
func (s *BackendService) CreateSession(ctx context.Context, weekID string, draft model.SessionDraft) error {
	return s.request(ctx, http.MethodPost, "/schedule/weeks/"+weekID+"/sessions", draft, nil)
}

func (s *BackendService) UpdateSession(ctx context.Context, weekID, id string, patch model.SessionPatch, updatedAt string) error {
	body := struct {
		model.SessionPatch
		UpdatedAt string `json:"updatedAt"`
	}{SessionPatch: patch, UpdatedAt: updatedAt}
	return s.request(ctx, http.MethodPatch, "/schedule/weeks/"+weekID+"/sessions/"+id, body, nil)
}

func (s *BackendService) DeleteSession(ctx context.Context, weekID, id string) error {
	return s.request(ctx, http.MethodDelete, "/schedule/weeks/"+weekID+"/sessions/"+id, nil, nil)
}

func (s *BackendService) FetchOnboarding(ctx context.Context) (*model.OnboardingPreferences, error) {
	var prefs model.OnboardingPreferences
	if err := s.request(ctx, http.MethodGet, "/onboarding/me", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (s *BackendService) SaveOnboarding(ctx context.Context, prefs model.OnboardingPreferences) error {
	return s.request(ctx, http.MethodPut, "/onboarding/me", prefs, nil)
}

func (s *BackendService) FetchLessons(ctx context.Context) ([]model.Lesson, error) {
	var out struct {
		Items []model.Lesson `json:"items"`
	}
	if err := s.request(ctx, http.MethodGet, "/lessons", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *BackendService) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := s.request(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: login response missing token", util.ErrBackendUnavailable)
	}
	return out.Token, nil
}
