package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qs3c/codegen_go_server/internal/model"
)

func TestSuggest_GoDocComments(t *testing.T) {
	code := "package main\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n"

	suggestions := Suggest(code, model.LangGo, nil)
	assert.Contains(t, suggestions, "Add doc comments to functions for better documentation")
	assert.Contains(t, suggestions, "Consider returning errors explicitly for better error propagation")
}

func TestSuggest_GoRulesSkippedForOtherLanguages(t *testing.T) {
	code := "func = lambda: 1\n"

	suggestions := Suggest(code, model.LangPython, nil)
	assert.NotContains(t, suggestions, "Add doc comments to functions for better documentation")
	assert.NotContains(t, suggestions, "Consider returning errors explicitly for better error propagation")
}

func TestSuggest_ErrorHandling(t *testing.T) {
	without := Suggest("x = 1", model.LangPython, nil)
	assert.Contains(t, without, "Consider adding error handling for robustness")

	with := Suggest("try:\n    x = 1\nexcept Exception:\n    pass\n", model.LangPython, nil)
	assert.NotContains(t, with, "Consider adding error handling for robustness")
}

func TestSuggest_HighComplexity(t *testing.T) {
	metrics := &model.CodeMetrics{CyclomaticComplexity: 11}

	suggestions := Suggest("try: pass", model.LangPython, metrics)
	assert.Contains(t, suggestions, "Consider refactoring to reduce complexity")

	metrics.CyclomaticComplexity = 10
	suggestions = Suggest("try: pass", model.LangPython, metrics)
	assert.NotContains(t, suggestions, "Consider refactoring to reduce complexity")
}

func TestSuggest_NilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		Suggest("try: pass", model.LangPython, nil)
	})
}

func TestSuggest_LongLines(t *testing.T) {
	code := "try:\n    " + strings.Repeat("x", 120) + "\n"

	suggestions := Suggest(code, model.LangPython, nil)
	assert.Contains(t, suggestions, "Some lines exceed 100 characters - consider breaking them up")

	// 只提示一次
	count := 0
	for _, s := range suggestions {
		if strings.Contains(s, "exceed 100 characters") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSuggest_MagicNumbers(t *testing.T) {
	code := "try: a = 1 + 2 + 3 + 4 + 5 + 6"

	suggestions := Suggest(code, model.LangPython, nil)
	assert.Contains(t, suggestions, "Consider using named constants instead of magic numbers")

	suggestions = Suggest("try: a = 1 + 2", model.LangPython, nil)
	assert.NotContains(t, suggestions, "Consider using named constants instead of magic numbers")
}

func TestSuggest_CleanCodeEmpty(t *testing.T) {
	// 带错误处理、无其他问题的代码不产生建议
	code := "// Run 执行任务\nfunc Run() error {\n\tdefer recoverPanic()\n\ttry()\n\treturn nil\n}\n"

	suggestions := Suggest(code, model.LangGo, &model.CodeMetrics{CyclomaticComplexity: 2})
	assert.Empty(t, suggestions)
}
