package analyzer

import (
	"regexp"
	"strings"

	"github.com/qs3c/codegen_go_server/internal/model"
)

// errorKeywords 错误处理相关的关键字
var errorKeywords = []string{"try", "except", "catch", "throw", "rescue"}

var numberPattern = regexp.MustCompile(`\b\d+\b`)

// Suggest 生成改进建议。检查顺序固定，结果顺序稳定
func Suggest(code string, lang model.Language, metrics *model.CodeMetrics) []string {
	suggestions := []string{}

	// Go 代码的文档注释和错误返回检查，其余语言跳过
	hasFunc := strings.Contains(code, "func ")
	if lang == model.LangGo && hasFunc && !strings.Contains(code, "// ") {
		suggestions = append(suggestions, "Add doc comments to functions for better documentation")
	}

	if lang == model.LangGo && hasFunc && !strings.Contains(code, "error") {
		suggestions = append(suggestions, "Consider returning errors explicitly for better error propagation")
	}

	hasErrorHandling := false
	for _, kw := range errorKeywords {
		if strings.Contains(code, kw) {
			hasErrorHandling = true
			break
		}
	}
	if !hasErrorHandling {
		suggestions = append(suggestions, "Consider adding error handling for robustness")
	}

	if metrics != nil && metrics.CyclomaticComplexity > 10 {
		suggestions = append(suggestions, "Consider refactoring to reduce complexity")
	}

	for _, line := range strings.Split(code, "\n") {
		if len(line) > 100 {
			suggestions = append(suggestions, "Some lines exceed 100 characters - consider breaking them up")
			break
		}
	}

	if len(numberPattern.FindAllString(code, -1)) > 5 {
		suggestions = append(suggestions, "Consider using named constants instead of magic numbers")
	}

	return suggestions
}
