package analyzer

import (
	"context"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"

	"github.com/qs3c/codegen_go_server/internal/model"
)

// SyntaxResult 语法检查结果
type SyntaxResult struct {
	Valid  bool
	Issues []model.Issue
	AST    *model.ASTNode
}

// SyntaxChecker 语法检查器。实现方式在进程启动时选定一次：
// 启用 cgo 时由 tree-sitter 解析，否则退回 fallbackChecker
type SyntaxChecker interface {
	Check(ctx context.Context, code string, lang model.Language) SyntaxResult

	// ParserBacked 是否为 tree-sitter 解析模式，健康检查上报用
	ParserBacked() bool
}

// fallbackChecker 无解析器时的检查器。Go 代码走进程内 go/parser 校验，
// 其余语言一律视为有效——这是已知的精度缺口，不是缺陷
type fallbackChecker struct{}

func (fallbackChecker) ParserBacked() bool { return false }

func (fallbackChecker) Check(_ context.Context, code string, lang model.Language) SyntaxResult {
	res := SyntaxResult{Valid: true, Issues: []model.Issue{}}

	if lang != model.LangGo {
		return res
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "src.go", code, 0); err != nil {
		res.Valid = false
		issue := model.Issue{
			Type:    "error",
			Message: fmt.Sprintf("Syntax error: %v", err),
		}
		if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
			line := list[0].Pos.Line
			issue.Line = &line
			issue.Message = fmt.Sprintf("Syntax error: %s", list[0].Msg)
		}
		res.Issues = append(res.Issues, issue)
	}

	return res
}
