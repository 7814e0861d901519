package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/codegen_go_server/config"
	"github.com/qs3c/codegen_go_server/internal/testutil"
)

func setupAnalysisRouter() *gin.Engine {
	cfg := config.Default()
	h := NewAnalysisHandler(newAnalysisService(cfg))

	r := gin.New()
	r.POST("/analyze", h.Analyze)
	r.POST("/analyze/format", h.Format)
	r.POST("/analyze/validate", h.Validate)
	return r
}

func TestAnalyze_ValidCode(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":     testutil.ValidGo,
		"language": "go",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Equal(t, true, data["syntax_valid"])
	assert.Equal(t, "go", data["language"])
	assert.GreaterOrEqual(t, data["complexity"].(float64), 1.0)
	assert.NotNil(t, data["metrics"])
	assert.Empty(t, data["syntax_errors"])
}

func TestAnalyze_BrokenCode(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":     testutil.BrokenGo,
		"language": "go",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Equal(t, false, data["syntax_valid"])
	assert.NotEmpty(t, data["syntax_errors"])
}

func TestAnalyze_MetricsDefaults(t *testing.T) {
	r := setupAnalysisRouter()

	// 关闭复杂度计算时返回缺省指标
	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":             testutil.ValidPython,
		"language":         "python",
		"check_complexity": false,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Equal(t, 1.0, data["complexity"])
	assert.Equal(t, 85.0, data["readability_score"])
	assert.Equal(t, 0.0, data["lines_of_code"])
	assert.Equal(t, 95.0, data["performance_score"])
	assert.Nil(t, data["metrics"])
}

func TestAnalyze_PerformanceScoreClamped(t *testing.T) {
	r := setupAnalysisRouter()

	// 决策关键字堆叠把复杂度推高到 20 以上，性能分应截断到 0
	var b strings.Builder
	b.WriteString("x = 0\n")
	for i := 0; i < 25; i++ {
		b.WriteString("if x:\n    x += 1\n")
	}

	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":     b.String(),
		"language": "python",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Equal(t, 0.0, data["performance_score"])
}

func TestAnalyze_UnsupportedLanguage(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":     "DISPLAY 'HELLO'.",
		"language": "cobol",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse(t, w)
	assert.Contains(t, resp.Message, "不支持的编程语言")
}

func TestAnalyze_MissingCode(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze", gin.H{
		"language": "go",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_FormatFlag(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze", gin.H{
		"code":        "package main\n\nfunc main() {\nx:=1\n_=x\n}\n",
		"language":    "go",
		"format_code": true,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	require.NotNil(t, data["formatted_code"])
	assert.Contains(t, data["formatted_code"].(string), "x := 1")
}

func TestFormatEndpoint(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze/format", gin.H{
		"code":     "package main\n\nfunc   main()   {}\n",
		"language": "go",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Contains(t, data["formatted_code"].(string), "func main()")
	assert.Equal(t, "go", data["language"])
}

func TestValidateEndpoint(t *testing.T) {
	r := setupAnalysisRouter()

	w := performRequest(r, "POST", "/analyze/validate", gin.H{
		"code":     testutil.BrokenGo,
		"language": "go",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, parseResponse(t, w))
	assert.Equal(t, false, data["valid"])
	assert.NotEmpty(t, data["issues"])
}
