//go:build cgo

package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/model"
	"github.com/qs3c/codegen_go_server/internal/testutil"
)

func TestNewSyntaxChecker_ModeByConfig(t *testing.T) {
	checker := NewSyntaxChecker(config.AnalyzeConfig{EnableParsers: true})
	assert.True(t, checker.ParserBacked())

	checker = NewSyntaxChecker(config.AnalyzeConfig{EnableParsers: false})
	assert.False(t, checker.ParserBacked())
}

func TestSitterChecker_ValidCode(t *testing.T) {
	checker := newSitterChecker()

	tests := []struct {
		lang model.Language
		code string
	}{
		{model.LangPython, testutil.ValidPython},
		{model.LangGo, testutil.ValidGo},
		{model.LangJavaScript, "function greet(name) { console.log(name); }"},
	}

	for _, tt := range tests {
		res := checker.Check(context.Background(), tt.code, tt.lang)
		assert.True(t, res.Valid, "lang: %s", tt.lang)
		assert.Empty(t, res.Issues, "lang: %s", tt.lang)
		assert.NotNil(t, res.AST, "lang: %s", tt.lang)
	}
}

func TestSitterChecker_BrokenCode(t *testing.T) {
	checker := newSitterChecker()

	res := checker.Check(context.Background(), testutil.BrokenPython, model.LangPython)
	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Issues)

	issue := res.Issues[0]
	assert.Equal(t, "error", issue.Type)
	require.NotNil(t, issue.Line)
	assert.Greater(t, *issue.Line, 0)
	assert.Contains(t, issue.Message, "Syntax error at line")
}

func TestSitterChecker_UnsupportedLanguage(t *testing.T) {
	checker := newSitterChecker()

	res := checker.Check(context.Background(), "IDENTIFICATION DIVISION.", model.Language("cobol"))
	assert.False(t, res.Valid)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0].Message, "Parser not available for cobol")
	assert.Nil(t, res.AST)
}

func TestSitterChecker_ASTStructure(t *testing.T) {
	checker := newSitterChecker()

	res := checker.Check(context.Background(), testutil.ValidPython, model.LangPython)
	require.NotNil(t, res.AST)
	assert.Equal(t, "module", res.AST.Type)
	assert.NotEmpty(t, res.AST.Children)
	assert.Equal(t, 0, res.AST.Start.Line)
}

func TestSitterChecker_ConcurrentChecks(t *testing.T) {
	// 语法表共享只读，Parser 按调用创建，可并发使用
	checker := newSitterChecker()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			res := checker.Check(context.Background(), testutil.ValidPython, model.LangPython)
			assert.True(t, res.Valid)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
