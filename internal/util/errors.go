package util

import "errors"

var (
	// ErrBackendUnavailable 远端不可用：网络错误、非 2xx、响应解析失败、超时统一折叠为此类
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrKeyNotFound     = errors.New("storage key not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrBadWeekID       = errors.New("malformed week id")
	ErrInvalidStatus   = errors.New("invalid session status")
)
