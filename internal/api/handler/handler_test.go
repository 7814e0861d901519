package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/analyzer"
	"github.com/qs3c/codegen_go_server/internal/pkg/llm"
	"github.com/qs3c/codegen_go_server/internal/pkg/response"
	"github.com/qs3c/codegen_go_server/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockFactory 返回固定使用 mock 客户端的生成服务工厂
func mockFactory(mock *llm.MockClient, cfg *config.Config) GeneratorFactory {
	return func(apiKey string) (*service.GenerationService, error) {
		if apiKey == "" {
			return nil, llm.ErrMissingAPIKey
		}
		return service.NewGenerationService(mock, cfg), nil
	}
}

func newAnalysisService(cfg *config.Config) *service.AnalysisService {
	return service.NewAnalysisService(analyzer.NewSyntaxChecker(cfg.Analyze), cfg)
}

func performRequest(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func dataMap(t *testing.T, resp response.Response) map[string]interface{} {
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", resp.Data)
	return data
}
