package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 令牌由 Lexigrain 后端签发，本服务没有签名密钥，只做不验签的过期检查，
// 用于在同步推送前判断缓存令牌是否还值得携带。

func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		// 无 exp 声明的令牌按永不过期处理
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// TokenUsable 令牌解析成功且未过期
func TokenUsable(tokenString string, now time.Time) bool {
	if tokenString == "" {
		return false
	}
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	if exp.IsZero() {
		return true
	}
	return exp.After(now)
}
