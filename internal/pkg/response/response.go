package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码直接使用 HTTP 状态码，body 与状态行保持一致
var codeMessages = map[int]string{
	http.StatusOK:                  "success",
	http.StatusBadRequest:          "参数错误",
	http.StatusUnauthorized:        "认证失败",
	http.StatusNotFound:            "资源不存在",
	http.StatusNotImplemented:      "接口未实现",
	http.StatusInternalServerError: "服务器内部错误",
}

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// ParamError 参数错误
func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// AuthError 认证失败
func AuthError(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFoundError 资源不存在
func NotFoundError(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// NotImplementedError 接口未实现
func NotImplementedError(c *gin.Context, message string) {
	Error(c, http.StatusNotImplemented, message)
}

// ServerError 服务器错误
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
