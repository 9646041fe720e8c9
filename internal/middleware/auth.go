package middleware

import (
	"crypto/subtle"
	"strings"

	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/util"

	"github.com/gin-gonic/gin"
)

// APITokenMiddleware 本地接口的共享令牌鉴权。守护进程面向单用户，
// server.api_token 为空时直接放行，配置后要求 Bearer 头或 token 查询参数匹配。
func APITokenMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := cfg.Server.APIToken
		if expected == "" {
			c.Next()
			return
		}

		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(expected)) != 1 {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
