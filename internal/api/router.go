package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/api/handler"
	"github.com/qs3c/codegen_go_server/internal/api/middleware"
)

type Router struct {
	healthHandler    *handler.HealthHandler
	languagesHandler *handler.LanguagesHandler
	analysisHandler  *handler.AnalysisHandler
	generateHandler  *handler.GenerateHandler
	cfg              *config.Config
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	languagesHandler *handler.LanguagesHandler,
	analysisHandler *handler.AnalysisHandler,
	generateHandler *handler.GenerateHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		healthHandler:    healthHandler,
		languagesHandler: languagesHandler,
		analysisHandler:  analysisHandler,
		generateHandler:  generateHandler,
		cfg:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 健康检查
		api.GET("/health", r.healthHandler.Check)

		// 公开接口 - 语言能力表
		languages := api.Group("/languages")
		{
			languages.GET("", r.languagesHandler.List)
			languages.GET("/programming", r.languagesHandler.ListProgramming)
			languages.GET("/natural", r.languagesHandler.ListNatural)
			languages.GET("/:language/frameworks", r.languagesHandler.ListFrameworks)
		}

		// 公开接口 - 代码分析
		analyze := api.Group("/analyze")
		{
			analyze.POST("", r.analysisHandler.Analyze)
			analyze.POST("/format", r.analysisHandler.Format)
			analyze.POST("/validate", r.analysisHandler.Validate)
		}

		// 生成结果不持久化，查询接口显式未实现，无需认证
		api.GET("/generate/:id", r.generateHandler.GetGeneration)

		// 生成接口要求调用方通过 Bearer 头自带 LLM 密钥
		generate := api.Group("/generate")
		generate.Use(middleware.APIKey())
		{
			generate.POST("", r.generateHandler.Generate)
			generate.POST("/batch", r.generateHandler.GenerateBatch)
		}
	}

	return engine
}
