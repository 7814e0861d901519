package main

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/analyzer"
	"github.com/qs3c/codegen_go_server/internal/api"
	"github.com/qs3c/codegen_go_server/internal/api/handler"
	"github.com/qs3c/codegen_go_server/internal/database"
	"github.com/qs3c/codegen_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 可选缓存连接，仅用于健康检查上报
	var cache *redis.Client
	if cfg.Cache.Enabled {
		cache, err = database.NewRedis(&cfg.Cache)
		if err != nil {
			log.Fatalf("Failed to connect cache: %v", err)
		}
		log.Println("Cache connected")
	}

	// 语法检查模式在启动时选定一次
	checker := analyzer.NewSyntaxChecker(cfg.Analyze)
	if checker.ParserBacked() {
		log.Println("Syntax checking: tree-sitter parsers loaded")
	} else {
		log.Println("Syntax checking: fallback mode (go/parser only)")
	}

	// 初始化 Service
	analysisService := service.NewAnalysisService(checker, cfg)

	// 初始化 Handler
	healthHandler := handler.NewHealthHandler(analysisService, cache, cfg)
	languagesHandler := handler.NewLanguagesHandler()
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	generateHandler := handler.NewGenerateHandler(handler.DefaultGeneratorFactory(cfg), cfg)

	// 初始化 Router
	router := api.NewRouter(
		healthHandler,
		languagesHandler,
		analysisHandler,
		generateHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
