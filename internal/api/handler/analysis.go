package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/codegen_go_server/internal/model/dto"
	"github.com/qs3c/codegen_go_server/internal/pkg/response"
	"github.com/qs3c/codegen_go_server/internal/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze 分析代码的语法、复杂度和质量
// POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if !req.Lang().Valid() {
		response.ParamError(c, "不支持的编程语言: "+req.Language)
		return
	}

	result := h.analysisService.Analyze(c.Request.Context(), &req)

	// 指标缺省值：未计算指标时复杂度 1、可读性 85、行数 0
	complexity := 1
	readability := 85.0
	linesOfCode := 0
	if result.Metrics != nil {
		complexity = result.Metrics.CyclomaticComplexity
		readability = result.Metrics.ReadabilityScore
		linesOfCode = result.Metrics.LinesOfCode
	}

	performance := 100.0 - float64(complexity)*5
	if performance < 0 {
		performance = 0
	}
	if performance > 100 {
		performance = 100
	}

	response.Success(c, dto.AnalysisResponse{
		SyntaxValid:      result.Valid,
		Language:         req.Language,
		Complexity:       complexity,
		ReadabilityScore: readability,
		PerformanceScore: performance,
		LinesOfCode:      linesOfCode,
		SyntaxErrors:     result.Issues,
		Suggestions:      result.Suggestions,
		Metrics:          result.Metrics,
		FormattedCode:    result.FormattedCode,
		ASTStructure:     result.AST,
	})
}

// Format 按语言规范格式化代码
// POST /api/v1/analyze/format
func (h *AnalysisHandler) Format(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if !req.Lang().Valid() {
		response.ParamError(c, "不支持的编程语言: "+req.Language)
		return
	}

	formatted := h.analysisService.Format(c.Request.Context(), req.Code, req.Lang())

	response.Success(c, dto.FormatResponse{
		FormattedCode: formatted,
		Language:      req.Language,
	})
}

// Validate 校验代码语法
// POST /api/v1/analyze/validate
func (h *AnalysisHandler) Validate(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if !req.Lang().Valid() {
		response.ParamError(c, "不支持的编程语言: "+req.Language)
		return
	}

	valid, issues := h.analysisService.Validate(c.Request.Context(), req.Code, req.Lang())

	response.Success(c, dto.ValidateResponse{
		Valid:    valid,
		Language: req.Language,
		Issues:   issues,
	})
}
