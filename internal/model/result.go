package model

// GenerationStatus 生成任务状态
type GenerationStatus string

const (
	StatusPending    GenerationStatus = "pending"
	StatusInProgress GenerationStatus = "in_progress"
	StatusCompleted  GenerationStatus = "completed"
	StatusFailed     GenerationStatus = "failed"
)

// CodeMetrics 代码质量指标
type CodeMetrics struct {
	LinesOfCode            int     `json:"lines_of_code"`
	CyclomaticComplexity   int     `json:"cyclomatic_complexity"`
	ReadabilityScore       float64 `json:"readability_score"`
	EstimatedExecutionTime string  `json:"estimated_execution_time,omitempty"`
	MemoryComplexity       string  `json:"memory_complexity,omitempty"`
}

// Issue 语法检查发现的问题。Line 为 1 起始行号，Column 为 0 起始列号
type Issue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

// Position AST 节点位置（0 起始）
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ASTNode 精简后的语法树节点
type ASTNode struct {
	Type     string     `json:"type"`
	Start    Position   `json:"start"`
	End      Position   `json:"end"`
	Children []*ASTNode `json:"children"`
}

// TestResult 生成的单元测试
type TestResult struct {
	TestCode         string  `json:"test_code"`
	Framework        string  `json:"framework"`
	CoverageEstimate float64 `json:"coverage_estimate"`
	TestCount        int     `json:"test_count"`
}

// Documentation 生成的文档
type Documentation struct {
	InlineComments string   `json:"inline_comments"`
	Readme         *string  `json:"readme"`
	APIDocs        *string  `json:"api_docs"`
	UsageExamples  []string `json:"usage_examples"`
}
