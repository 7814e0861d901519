package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// MockClient 测试用的假 LLM 客户端。按提示词关键字匹配回复，
// 记录调用次数
type MockClient struct {
	mu        sync.Mutex
	calls     int
	Responses map[string]string
	Default   string
	Err       error

	// FailOn 非空时，提示词包含该子串的调用返回 FailErr
	FailOn  string
	FailErr error
}

// NewMockClient 创建测试客户端
func NewMockClient() *MockClient {
	return &MockClient{
		Responses: map[string]string{},
		Default:   "```go\npackage main\n\nfunc main() {}\n```",
	}
}

func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	if m.FailOn != "" && strings.Contains(prompt, m.FailOn) {
		err := m.FailErr
		if err == nil {
			err = errors.New("mock failure")
		}
		return "", err
	}

	for key, resp := range m.Responses {
		if key != "" && strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return m.Default, nil
}

// Calls 返回累计调用次数
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
