package dto

import (
	"github.com/qs3c/codegen_go_server/internal/model"
)

// AnalysisRequest 代码分析请求
type AnalysisRequest struct {
	Code     string `json:"code" binding:"required,min=1,max=10000"`
	Language string `json:"language" binding:"required"`

	// 三个检查开关缺省为 true，格式化缺省为 false
	CheckSyntax         *bool `json:"check_syntax,omitempty"`
	CheckComplexity     *bool `json:"check_complexity,omitempty"`
	SuggestImprovements *bool `json:"suggest_improvements,omitempty"`
	FormatCode          *bool `json:"format_code,omitempty"`
}

// Lang 返回语言枚举
func (r *AnalysisRequest) Lang() model.Language {
	return model.Language(r.Language)
}

// Flags 应用缺省值后的检查开关
type Flags struct {
	CheckSyntax         bool
	CheckComplexity     bool
	SuggestImprovements bool
	FormatCode          bool
}

// Flags 返回应用缺省值后的开关组合
func (r *AnalysisRequest) Flags() Flags {
	f := Flags{
		CheckSyntax:         true,
		CheckComplexity:     true,
		SuggestImprovements: true,
		FormatCode:          false,
	}
	if r.CheckSyntax != nil {
		f.CheckSyntax = *r.CheckSyntax
	}
	if r.CheckComplexity != nil {
		f.CheckComplexity = *r.CheckComplexity
	}
	if r.SuggestImprovements != nil {
		f.SuggestImprovements = *r.SuggestImprovements
	}
	if r.FormatCode != nil {
		f.FormatCode = *r.FormatCode
	}
	return f
}

// AnalysisResponse 代码分析响应
type AnalysisResponse struct {
	SyntaxValid      bool                `json:"syntax_valid"`
	Language         string              `json:"language"`
	Complexity       int                 `json:"complexity"`
	ReadabilityScore float64             `json:"readability_score"`
	PerformanceScore float64             `json:"performance_score"`
	LinesOfCode      int                 `json:"lines_of_code"`
	SyntaxErrors     []model.Issue       `json:"syntax_errors"`
	Suggestions      []string            `json:"suggestions"`
	Metrics          *model.CodeMetrics  `json:"metrics"`
	FormattedCode    *string             `json:"formatted_code"`
	ASTStructure     *model.ASTNode      `json:"ast_structure"`
}

// FormatResponse /analyze/format 响应
type FormatResponse struct {
	FormattedCode string `json:"formatted_code"`
	Language      string `json:"language"`
}

// ValidateResponse /analyze/validate 响应
type ValidateResponse struct {
	Valid    bool          `json:"valid"`
	Language string        `json:"language"`
	Issues   []model.Issue `json:"issues"`
}
