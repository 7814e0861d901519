//go:build cgo

package analyzer

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/model"
)

// NewSyntaxChecker 构建语法检查器。cgo 构建下默认使用 tree-sitter，
// 可通过配置关闭退回 fallback 模式
func NewSyntaxChecker(cfg config.AnalyzeConfig) SyntaxChecker {
	if !cfg.EnableParsers {
		return fallbackChecker{}
	}
	return newSitterChecker()
}

// sitterChecker tree-sitter 解析模式。语法表在构造时装载一次，之后只读；
// Parser 对象非并发安全，每次 Check 单独创建
type sitterChecker struct {
	grammars map[model.Language]*sitter.Language
}

func newSitterChecker() *sitterChecker {
	return &sitterChecker{
		grammars: map[model.Language]*sitter.Language{
			model.LangPython:     python.GetLanguage(),
			model.LangJavaScript: javascript.GetLanguage(),
			model.LangTypeScript: typescript.GetLanguage(),
			model.LangJava:       java.GetLanguage(),
			model.LangCSharp:     csharp.GetLanguage(),
			model.LangGo:         golang.GetLanguage(),
			model.LangRust:       rust.GetLanguage(),
			model.LangCpp:        cpp.GetLanguage(),
			model.LangRuby:       ruby.GetLanguage(),
			model.LangSwift:      swift.GetLanguage(),
		},
	}
}

func (s *sitterChecker) ParserBacked() bool { return true }

func (s *sitterChecker) Check(ctx context.Context, code string, lang model.Language) SyntaxResult {
	res := SyntaxResult{Valid: true, Issues: []model.Issue{}}

	grammar, ok := s.grammars[lang]
	if !ok {
		res.Valid = false
		res.Issues = append(res.Issues, model.Issue{
			Type:    "error",
			Message: fmt.Sprintf("Parser not available for %s", lang),
		})
		return res
	}

	p := sitter.NewParser()
	p.SetLanguage(grammar)

	tree, err := p.ParseCtx(ctx, nil, []byte(code))
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, model.Issue{
			Type:    "error",
			Message: fmt.Sprintf("Parse error: %v", err),
		})
		return res
	}
	defer tree.Close()

	root := tree.RootNode()

	collectSyntaxErrors(root, &res.Issues)
	if len(res.Issues) > 0 {
		res.Valid = false
	}

	res.AST = toASTNode(root)
	return res
}

// collectSyntaxErrors 先序遍历收集 ERROR 和 missing 节点
func collectSyntaxErrors(node *sitter.Node, issues *[]model.Issue) {
	if node.Type() == "ERROR" || node.IsMissing() {
		line := int(node.StartPoint().Row) + 1
		column := int(node.StartPoint().Column)
		*issues = append(*issues, model.Issue{
			Type:    "error",
			Line:    &line,
			Column:  &column,
			Message: fmt.Sprintf("Syntax error at line %d", line),
		})
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectSyntaxErrors(node.Child(i), issues)
	}
}

// toASTNode 把语法树转成响应结构，剔除 extra 节点
func toASTNode(node *sitter.Node) *model.ASTNode {
	out := &model.ASTNode{
		Type: node.Type(),
		Start: model.Position{
			Line:   int(node.StartPoint().Row),
			Column: int(node.StartPoint().Column),
		},
		End: model.Position{
			Line:   int(node.EndPoint().Row),
			Column: int(node.EndPoint().Column),
		},
		Children: []*model.ASTNode{},
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.IsExtra() {
			continue
		}
		out.Children = append(out.Children, toASTNode(child))
	}

	return out
}
