package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/qs3c/codegen_go_server/internal/model"
)

var (
	ErrPromptTooShort = errors.New("提示词长度不能少于10个字符")
	ErrBadLanguage    = errors.New("不支持的编程语言")
	ErrBadNatural     = errors.New("不支持的自然语言")
)

// GenerationRequest 代码生成请求
type GenerationRequest struct {
	Prompt          string  `json:"prompt" binding:"required,max=2000"`
	Language        string  `json:"programming_language" binding:"required"`
	NaturalLanguage string  `json:"natural_language,omitempty"`
	ProjectGoals    string  `json:"project_goals,omitempty" binding:"omitempty,max=500"`
	IncludeTests    *bool   `json:"include_tests,omitempty"`
	IncludeDocs     *bool   `json:"include_docs,omitempty"`
	TestFramework   string  `json:"test_framework,omitempty" binding:"omitempty,max=50"`
	StyleGuide      string  `json:"style_guide,omitempty" binding:"omitempty,max=500"`
	ComplexityLevel string  `json:"complexity_level,omitempty" binding:"omitempty,oneof=simple intermediate advanced"`
}

// Normalize 裁剪提示词、填充缺省值并校验枚举。绑定通过后、进入服务层前调用
func (r *GenerationRequest) Normalize() error {
	r.Prompt = strings.TrimSpace(r.Prompt)
	if len(r.Prompt) < 10 {
		return ErrPromptTooShort
	}
	if !model.Language(r.Language).Valid() {
		return ErrBadLanguage
	}
	if r.NaturalLanguage == "" {
		r.NaturalLanguage = string(model.NaturalEnglish)
	}
	if !model.NaturalLanguage(r.NaturalLanguage).Valid() {
		return ErrBadNatural
	}
	if r.ComplexityLevel == "" {
		r.ComplexityLevel = "intermediate"
	}
	return nil
}

// Lang 返回语言枚举
func (r *GenerationRequest) Lang() model.Language {
	return model.Language(r.Language)
}

// WantTests 是否生成测试，缺省 true
func (r *GenerationRequest) WantTests() bool {
	return r.IncludeTests == nil || *r.IncludeTests
}

// WantDocs 是否生成文档，缺省 true
func (r *GenerationRequest) WantDocs() bool {
	return r.IncludeDocs == nil || *r.IncludeDocs
}

// BatchGenerationRequest 批量生成请求，最多 3 个
type BatchGenerationRequest struct {
	Requests []GenerationRequest `json:"requests" binding:"required,min=1,max=3,dive"`
}

// GenerationResponse 代码生成响应
type GenerationResponse struct {
	ID             string                  `json:"id"`
	Status         model.GenerationStatus  `json:"status"`
	Code           string                  `json:"code,omitempty"`
	Language       string                  `json:"language"`
	Tests          *model.TestResult       `json:"tests,omitempty"`
	Documentation  *model.Documentation    `json:"documentation,omitempty"`
	Metrics        *model.CodeMetrics      `json:"metrics,omitempty"`
	Error          string                  `json:"error,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	ProcessingTime float64                 `json:"processing_time,omitempty"`
}

// LanguagesResponse 语言能力表响应
type LanguagesResponse struct {
	ProgrammingLanguages []model.LanguageInfo `json:"programming_languages"`
	NaturalLanguages     []model.LanguageInfo `json:"natural_languages"`
	TestFrameworks       map[string][]string  `json:"test_frameworks"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
