package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/codegen_go_server/internal/pkg/response"
)

const (
	apiKeyKey = "apiKey"
)

// APIKey 提取调用方自带的 LLM 密钥。服务自身不校验密钥有效性，
// 只做透传；缺失或格式错误直接拒绝。密钥不写日志
func APIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthError(c, "请通过 Authorization 头提供 API 密钥")
			c.Abort()
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		if key == authHeader || key == "" {
			response.AuthError(c, "认证格式错误，应为 Bearer <key>")
			c.Abort()
			return
		}

		c.Set(apiKeyKey, key)
		c.Next()
	}
}

// GetAPIKey 从上下文获取调用方密钥
func GetAPIKey(c *gin.Context) (string, bool) {
	v, exists := c.Get(apiKeyKey)
	if !exists {
		return "", false
	}
	key, ok := v.(string)
	return key, ok
}
