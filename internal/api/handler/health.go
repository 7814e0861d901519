package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/model/dto"
	"github.com/qs3c/codegen_go_server/internal/pkg/response"
	"github.com/qs3c/codegen_go_server/internal/service"
)

const Version = "1.0.0"

type HealthHandler struct {
	analysisService *service.AnalysisService
	cache           *redis.Client
	cfg             *config.Config
}

// NewHealthHandler 创建健康检查处理器。cache 未启用时传 nil
func NewHealthHandler(analysisService *service.AnalysisService, cache *redis.Client, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		analysisService: analysisService,
		cache:           cache,
		cfg:             cfg,
	}
}

// Check 健康检查，上报各依赖状态
// GET /api/v1/health
func (h *HealthHandler) Check(c *gin.Context) {
	services := map[string]string{}

	// OpenAI 密钥由调用方自带，这里只上报是否配置了缺省密钥
	if h.cfg.OpenAI.APIKey != "" {
		services["openai"] = "configured"
	} else {
		services["openai"] = "caller-provided"
	}

	if h.cache == nil {
		services["cache"] = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx).Err(); err != nil {
			services["cache"] = "disconnected"
		} else {
			services["cache"] = "connected"
		}
	}

	if h.analysisService.ParserBacked() {
		services["tree_sitter"] = "operational"
	} else {
		services["tree_sitter"] = "unavailable"
	}

	response.Success(c, dto.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC(),
		Services:  services,
	})
}
