package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/codegen_go_server/internal/model"
	"github.com/qs3c/codegen_go_server/internal/model/dto"
	"github.com/qs3c/codegen_go_server/internal/pkg/response"
)

type LanguagesHandler struct{}

func NewLanguagesHandler() *LanguagesHandler {
	return &LanguagesHandler{}
}

// List 获取全部语言能力表
// GET /api/v1/languages
func (h *LanguagesHandler) List(c *gin.Context) {
	frameworks := make(map[string][]string, len(model.TestFrameworks))
	for lang, fws := range model.TestFrameworks {
		frameworks[string(lang)] = fws
	}

	response.Success(c, dto.LanguagesResponse{
		ProgrammingLanguages: model.ProgrammingLanguageInfos,
		NaturalLanguages:     model.NaturalLanguageInfos,
		TestFrameworks:       frameworks,
	})
}

// ListProgramming 仅获取编程语言
// GET /api/v1/languages/programming
func (h *LanguagesHandler) ListProgramming(c *gin.Context) {
	langs := make([]string, len(model.Languages))
	for i, l := range model.Languages {
		langs[i] = string(l)
	}
	response.Success(c, langs)
}

// ListNatural 仅获取自然语言
// GET /api/v1/languages/natural
func (h *LanguagesHandler) ListNatural(c *gin.Context) {
	langs := make([]string, len(model.NaturalLanguages))
	for i, l := range model.NaturalLanguages {
		langs[i] = string(l)
	}
	response.Success(c, langs)
}

// ListFrameworks 获取指定语言的测试框架
// GET /api/v1/languages/:language/frameworks
func (h *LanguagesHandler) ListFrameworks(c *gin.Context) {
	lang := model.Language(c.Param("language"))

	frameworks, ok := model.TestFrameworks[lang]
	if !ok {
		frameworks = []string{}
	}
	response.Success(c, frameworks)
}
