package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/api/middleware"
	"github.com/qs3c/codegen_go_server/internal/model/dto"
	"github.com/qs3c/codegen_go_server/internal/pkg/llm"
	"github.com/qs3c/codegen_go_server/internal/pkg/response"
	"github.com/qs3c/codegen_go_server/internal/service"
)

// GeneratorFactory 按调用方密钥构建生成服务。密钥只在构建时经手，
// 不缓存、不落日志
type GeneratorFactory func(apiKey string) (*service.GenerationService, error)

// DefaultGeneratorFactory 基于 OpenAI 客户端的生成服务工厂
func DefaultGeneratorFactory(cfg *config.Config) GeneratorFactory {
	return func(apiKey string) (*service.GenerationService, error) {
		client, err := llm.NewOpenAIClient(apiKey, cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return service.NewGenerationService(client, cfg), nil
	}
}

type GenerateHandler struct {
	factory GeneratorFactory
	cfg     *config.Config
}

func NewGenerateHandler(factory GeneratorFactory, cfg *config.Config) *GenerateHandler {
	return &GenerateHandler{
		factory: factory,
		cfg:     cfg,
	}
}

// Generate 单次代码生成
// POST /api/v1/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	apiKey, ok := middleware.GetAPIKey(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if err := req.Normalize(); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	svc, err := h.factory(apiKey)
	if err != nil {
		response.AuthError(c, err.Error())
		return
	}

	result, err := svc.Generate(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Generation failed for language %s: %v", req.Language, err)
		response.ServerError(c, "代码生成失败: "+err.Error())
		return
	}

	response.Success(c, result)
}

// GenerateBatch 批量代码生成，最多 3 个并发，单个失败不影响其余
// POST /api/v1/generate/batch
func (h *GenerateHandler) GenerateBatch(c *gin.Context) {
	apiKey, ok := middleware.GetAPIKey(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.BatchGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if len(req.Requests) > h.cfg.Generate.MaxConcurrent {
		response.ParamError(c, "批量生成一次最多 3 个请求")
		return
	}
	for i := range req.Requests {
		if err := req.Requests[i].Normalize(); err != nil {
			response.ParamError(c, err.Error())
			return
		}
	}

	svc, err := h.factory(apiKey)
	if err != nil {
		response.AuthError(c, err.Error())
		return
	}

	results := svc.GenerateBatch(c.Request.Context(), req.Requests)

	response.Success(c, results)
}

// GetGeneration 查询历史生成结果。生成结果不持久化，接口显式未实现
// GET /api/v1/generate/:id
func (h *GenerateHandler) GetGeneration(c *gin.Context) {
	response.NotImplementedError(c, "生成结果查询尚未实现")
}
