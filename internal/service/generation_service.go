package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/analyzer"
	"github.com/qs3c/codegen_go_server/internal/model"
	"github.com/qs3c/codegen_go_server/internal/model/dto"
	"github.com/qs3c/codegen_go_server/internal/pkg/llm"
)

const codePromptTemplate = `You are an expert programmer. Generate high-quality, production-ready code based on the following requirements:

User Prompt: %s
Programming Language: %s
Project Goals: %s
Complexity Level: %s
Style Guide: %s

Requirements:
1. Code must be syntactically correct
2. Follow best practices for %s
3. Include proper error handling
4. Be efficient and optimised
5. Be well-structured and maintainable

Return ONLY the code, wrapped in triple backticks with the language identifier.
Do not include any explanations or comments outside the code block.`

const testPromptTemplate = `Generate comprehensive unit tests for the following code:

Code to test:
` + "```%s\n%s\n```" + `

Test Framework: %s
Language: %s

Requirements:
1. Cover all functions/methods
2. Include edge cases
3. Test error conditions
4. Follow %s best practices
5. Aim for high code coverage

Return ONLY the test code, wrapped in triple backticks with the language identifier.`

const docPromptTemplate = `Generate comprehensive documentation for the following code:

Code to document:
` + "```%s\n%s\n```" + `

Natural Language: %s

Please provide:
1. Code with inline comments explaining complex logic
2. A README section describing what the code does
3. API documentation if applicable
4. 2-3 usage examples

Format your response as JSON with the following structure:
{
    "inline_comments": "code with comments",
    "readme": "README content",
    "api_docs": "API documentation or null",
    "usage_examples": ["example1", "example2"]
}`

var (
	// 先找带语言标识的代码块，再找裸代码块
	taggedBlockPattern = regexp.MustCompile("(?s)```\\w*\\n(.*?)\\n```")
	bareBlockPattern   = regexp.MustCompile("(?s)```(.*?)```")
	jsonObjectPattern  = regexp.MustCompile(`(?s)\{.*\}`)
)

// testCountPatterns 统计测试用例数的各语言模式
var testCountPatterns = map[model.Language]*regexp.Regexp{
	model.LangPython:     regexp.MustCompile(`(?i)def test_|class Test`),
	model.LangJavaScript: regexp.MustCompile(`(?i)test\(|it\(|describe\(`),
	model.LangTypeScript: regexp.MustCompile(`(?i)test\(|it\(|describe\(`),
	model.LangJava:       regexp.MustCompile(`(?i)@Test|void test`),
	model.LangCSharp:     regexp.MustCompile(`(?i)\[Test\]|\[Fact\]`),
	model.LangGo:         regexp.MustCompile(`(?i)func Test`),
	model.LangRust:       regexp.MustCompile(`(?i)#\[test\]`),
	model.LangCpp:        regexp.MustCompile(`(?i)TEST\(|TEST_F\(`),
	model.LangRuby:       regexp.MustCompile(`(?i)it |describe |context `),
	model.LangSwift:      regexp.MustCompile(`(?i)func test`),
}

var defaultTestCountPattern = regexp.MustCompile(`(?i)test`)

// coverageIndicators 覆盖率估算用的测试特征
var coverageIndicators = []string{"test_", "Test", "assert", "expect", "should", "describe", "it("}

// GenerationService 代码生成编排。每个请求按调用方密钥单独构建，
// 不跨请求复用
type GenerationService struct {
	client llm.Client
	cfg    *config.Config
}

func NewGenerationService(client llm.Client, cfg *config.Config) *GenerationService {
	return &GenerationService{
		client: client,
		cfg:    cfg,
	}
}

// Generate 执行一次完整生成：代码、可选测试、可选文档、指标
func (s *GenerationService) Generate(ctx context.Context, req *dto.GenerationRequest) (*dto.GenerationResponse, error) {
	id := newGenerationID()
	start := time.Now()

	code, err := s.generateCode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("code generation failed: %w", err)
	}

	var tests *model.TestResult
	if req.WantTests() {
		tests, err = s.generateTests(ctx, code, req)
		if err != nil {
			return nil, fmt.Errorf("test generation failed: %w", err)
		}
	}

	var docs *model.Documentation
	if req.WantDocs() {
		docs, err = s.generateDocumentation(ctx, code, req)
		if err != nil {
			return nil, fmt.Errorf("documentation generation failed: %w", err)
		}
	}

	metrics := analyzer.EstimateMetrics(code, req.Lang())

	return &dto.GenerationResponse{
		ID:             id,
		Status:         model.StatusCompleted,
		Code:           code,
		Language:       req.Language,
		Tests:          tests,
		Documentation:  docs,
		Metrics:        metrics,
		CreatedAt:      time.Now().UTC(),
		ProcessingTime: math.Round(time.Since(start).Seconds()*100) / 100,
	}, nil
}

// GenerateBatch 并发执行批量生成，单个失败只影响对应位置的结果，
// 不影响其余请求
func (s *GenerationService) GenerateBatch(ctx context.Context, reqs []dto.GenerationRequest) []*dto.GenerationResponse {
	results := make([]*dto.GenerationResponse, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.cfg.Generate.MaxConcurrent)

	for i := range reqs {
		i := i
		req := reqs[i]
		g.Go(func() error {
			resp, err := s.Generate(ctx, &req)
			if err != nil {
				results[i] = &dto.GenerationResponse{
					ID:        newGenerationID(),
					Status:    model.StatusFailed,
					Language:  req.Language,
					Error:     err.Error(),
					CreatedAt: time.Now().UTC(),
				}
				return nil
			}
			results[i] = resp
			return nil
		})
	}

	// goroutine 不返回错误，Wait 仅用于汇合
	_ = g.Wait()

	return results
}

func (s *GenerationService) generateCode(ctx context.Context, req *dto.GenerationRequest) (string, error) {
	goals := req.ProjectGoals
	if goals == "" {
		goals = "General purpose"
	}
	style := req.StyleGuide
	if style == "" {
		style = "Standard conventions"
	}

	prompt := fmt.Sprintf(codePromptTemplate,
		req.Prompt, req.Language, goals, req.ComplexityLevel, style, req.Language)

	resp, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return extractCode(resp), nil
}

func (s *GenerationService) generateTests(ctx context.Context, code string, req *dto.GenerationRequest) (*model.TestResult, error) {
	framework := req.TestFramework
	if framework == "" {
		framework = model.DefaultTestFramework(req.Lang())
	}

	prompt := fmt.Sprintf(testPromptTemplate,
		req.Language, code, framework, req.Language, framework)

	resp, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	testCode := extractCode(resp)

	return &model.TestResult{
		TestCode:         testCode,
		Framework:        framework,
		CoverageEstimate: estimateCoverage(testCode),
		TestCount:        countTests(testCode, req.Lang()),
	}, nil
}

func (s *GenerationService) generateDocumentation(ctx context.Context, code string, req *dto.GenerationRequest) (*model.Documentation, error) {
	prompt := fmt.Sprintf(docPromptTemplate,
		req.Language, code, req.NaturalLanguage)

	resp, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseDocumentation(resp, code), nil
}

// extractCode 从自由文本回复中提取代码：优先带语言标识的代码块，
// 其次任意代码块，最后退回整段文本
func extractCode(response string) string {
	if m := taggedBlockPattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareBlockPattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(response)
}

// parseDocumentation 尝试从回复中解析 JSON 对象；失败时把整段回复
// 当作行内注释，其余字段置空
func parseDocumentation(response, code string) *model.Documentation {
	if m := jsonObjectPattern.FindString(response); m != "" {
		var parsed struct {
			InlineComments string   `json:"inline_comments"`
			Readme         *string  `json:"readme"`
			APIDocs        *string  `json:"api_docs"`
			UsageExamples  []string `json:"usage_examples"`
		}
		if err := json.Unmarshal([]byte(m), &parsed); err == nil {
			inline := parsed.InlineComments
			if inline == "" {
				inline = code
			}
			examples := parsed.UsageExamples
			if examples == nil {
				examples = []string{}
			}
			return &model.Documentation{
				InlineComments: inline,
				Readme:         parsed.Readme,
				APIDocs:        parsed.APIDocs,
				UsageExamples:  examples,
			}
		}
	}

	return &model.Documentation{
		InlineComments: response,
		UsageExamples:  []string{},
	}
}

// estimateCoverage 按出现的测试特征种类粗估覆盖率
func estimateCoverage(testCode string) float64 {
	count := 0
	for _, ind := range coverageIndicators {
		if strings.Contains(testCode, ind) {
			count++
		}
	}

	switch {
	case count >= 10:
		return 85.0
	case count >= 5:
		return 70.0
	case count >= 2:
		return 50.0
	default:
		return 30.0
	}
}

// countTests 按语言模式统计测试用例数，至少为 1
func countTests(testCode string, lang model.Language) int {
	pattern, ok := testCountPatterns[lang]
	if !ok {
		pattern = defaultTestCountPattern
	}
	matches := pattern.FindAllString(testCode, -1)
	if len(matches) == 0 {
		return 1
	}
	return len(matches)
}

func newGenerationID() string {
	return "gen_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
