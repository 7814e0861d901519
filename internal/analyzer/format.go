package analyzer

import (
	"golang.org/x/tools/imports"
	gofumpt "mvdan.cc/gofumpt/format"

	"github.com/qs3c/codegen_go_server/internal/model"
)

// Format 尽力格式化代码，任何内部失败都返回原文，不会报错。
// 仅对 Go 代码格式化：先走 gofumpt，失败后退回 goimports，
// 其余语言原样返回
func Format(code string, lang model.Language) string {
	if lang != model.LangGo {
		return code
	}

	if out, err := gofumpt.Source([]byte(code), gofumpt.Options{}); err == nil {
		return string(out)
	}

	if out, err := imports.Process("", []byte(code), nil); err == nil {
		return string(out)
	}

	return code
}
