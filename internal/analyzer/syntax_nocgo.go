//go:build !cgo

package analyzer

import (
	"github.com/qs3c/codegen_go_server/config"
)

// NewSyntaxChecker 无 cgo 构建下 tree-sitter 不可用，始终使用 fallback 模式
func NewSyntaxChecker(_ config.AnalyzeConfig) SyntaxChecker {
	return fallbackChecker{}
}
