package service

import (
	"context"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/analyzer"
	"github.com/qs3c/codegen_go_server/internal/model"
	"github.com/qs3c/codegen_go_server/internal/model/dto"
)

// AnalysisResult 一次分析的聚合结果
type AnalysisResult struct {
	Valid         bool
	Issues        []model.Issue
	Metrics       *model.CodeMetrics
	Suggestions   []string
	AST           *model.ASTNode
	FormattedCode *string
}

type AnalysisService struct {
	checker analyzer.SyntaxChecker
	cfg     *config.Config
}

func NewAnalysisService(checker analyzer.SyntaxChecker, cfg *config.Config) *AnalysisService {
	return &AnalysisService{
		checker: checker,
		cfg:     cfg,
	}
}

// ParserBacked 语法检查是否为解析器模式，健康检查上报用
func (s *AnalysisService) ParserBacked() bool {
	return s.checker.ParserBacked()
}

// Analyze 按请求开关依次执行语法检查、指标计算、建议生成和格式化，
// 未开启的步骤直接跳过
func (s *AnalysisService) Analyze(ctx context.Context, req *dto.AnalysisRequest) *AnalysisResult {
	flags := req.Flags()
	result := &AnalysisResult{
		Issues:      []model.Issue{},
		Suggestions: []string{},
	}

	if flags.CheckSyntax {
		syntax := s.checker.Check(ctx, req.Code, req.Lang())
		result.Valid = syntax.Valid
		result.Issues = append(result.Issues, syntax.Issues...)
		result.AST = syntax.AST
	}

	if flags.CheckComplexity {
		result.Metrics = analyzer.EstimateMetrics(req.Code, req.Lang())
	}

	if flags.SuggestImprovements {
		result.Suggestions = analyzer.Suggest(req.Code, req.Lang(), result.Metrics)
	}

	if flags.FormatCode {
		formatted := analyzer.Format(req.Code, req.Lang())
		result.FormattedCode = &formatted
	}

	return result
}

// Format 仅执行格式化
func (s *AnalysisService) Format(ctx context.Context, code string, lang model.Language) string {
	t := true
	f := false
	req := &dto.AnalysisRequest{
		Code:                code,
		Language:            string(lang),
		CheckSyntax:         &f,
		CheckComplexity:     &f,
		SuggestImprovements: &f,
		FormatCode:          &t,
	}
	result := s.Analyze(ctx, req)
	if result.FormattedCode == nil {
		return code
	}
	return *result.FormattedCode
}

// Validate 仅执行语法检查
func (s *AnalysisService) Validate(ctx context.Context, code string, lang model.Language) (bool, []model.Issue) {
	t := true
	f := false
	req := &dto.AnalysisRequest{
		Code:                code,
		Language:            string(lang),
		CheckSyntax:         &t,
		CheckComplexity:     &f,
		SuggestImprovements: &f,
		FormatCode:          &f,
	}
	result := s.Analyze(ctx, req)
	return result.Valid, result.Issues
}
