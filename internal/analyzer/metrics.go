package analyzer

import (
	"strings"

	"github.com/qs3c/codegen_go_server/internal/model"
)

// decisionKeywords 视为引入分支的关键字，用于近似圈复杂度。
// 纯子串计数，不做语法分析，关键字重叠导致的重复计数是接受的行为
var decisionKeywords = []string{
	"if", "elif", "else", "for", "while", "except",
	"case", "when", "catch", "switch", "&&", "||",
	"?", "try", "rescue", "unless",
}

// memoryIndicators 容器/分配相关的标记
var memoryIndicators = []string{
	"[]", "list(", "array", "new int[", "new Array",
	"malloc", "vector", "HashMap", "Dictionary",
	"Set(", "Map(",
}

// EstimateMetrics 对源码计算质量指标。总是返回尽力而为的结果，不会失败
func EstimateMetrics(code string, lang model.Language) *model.CodeMetrics {
	lines := strings.Split(code, "\n")

	return &model.CodeMetrics{
		LinesOfCode:            countLinesOfCode(lines, lang),
		CyclomaticComplexity:   cyclomaticComplexity(code),
		ReadabilityScore:       readabilityScore(lines),
		EstimatedExecutionTime: estimateTimeComplexity(code),
		MemoryComplexity:       estimateMemoryComplexity(code),
	}
}

// countLinesOfCode 统计非空、非注释起始的行数
func countLinesOfCode(lines []string, lang model.Language) int {
	markers, ok := model.CommentMarkers[lang]
	if !ok {
		markers = model.DefaultCommentMarkers
	}

	loc := 0
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		comment := false
		for _, m := range markers {
			if strings.HasPrefix(stripped, m) {
				comment = true
				break
			}
		}
		if !comment {
			loc++
		}
	}
	return loc
}

// cyclomaticComplexity 以空格/换行为边界统计决策关键字出现次数，基础值为 1
func cyclomaticComplexity(code string) int {
	complexity := 1
	for _, kw := range decisionKeywords {
		complexity += strings.Count(code, " "+kw+" ")
		complexity += strings.Count(code, "\n"+kw+" ")
	}
	return complexity
}

// readabilityScore 可读性评分，从 100 起按行长、行数、缩进问题扣分，裁剪到 [0,100]
func readabilityScore(lines []string) float64 {
	if len(lines) == 0 {
		return 100.0
	}

	total := 0
	for _, line := range lines {
		total += len(line)
	}
	avg := float64(total) / float64(len(lines))

	score := 100.0

	if avg > 80 {
		score -= min(30, (avg-80)*0.5)
	}

	if len(lines) < 3 {
		score -= 10
	} else if len(lines) > 50 {
		score -= min(20, float64(len(lines)-50)*0.2)
	}

	// 首字符非空白却包含冒号的行视为缩进问题
	indentIssues := 0
	for _, line := range lines {
		if line != "" && line[0] != ' ' && line[0] != '\t' && strings.Contains(line, ":") {
			indentIssues++
		}
	}
	score -= min(20, float64(indentIssues)*2)

	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}

// estimateTimeComplexity 基于循环关键字数量和嵌套缩进给出时间复杂度标签
func estimateTimeComplexity(code string) string {
	lower := strings.ToLower(code)

	loopCount := strings.Count(lower, "for") + strings.Count(lower, "while")

	switch {
	case loopCount >= 3:
		return "O(n³) or higher"
	case loopCount == 2:
		// 比较前两个带循环的行的缩进，判断是否嵌套
		var indents []int
		for _, line := range strings.Split(code, "\n") {
			if strings.Contains(line, "for") || strings.Contains(line, "while") {
				indents = append(indents, len(line)-len(strings.TrimLeft(line, " \t")))
			}
		}
		if len(indents) >= 2 && indents[1] > indents[0] {
			return "O(n²)"
		}
		return "O(n)"
	case loopCount == 1:
		return "O(n)"
	case strings.Contains(lower, "recursi") || strings.Contains(lower, "return self."):
		return "O(log n) to O(n) - recursive"
	default:
		return "O(1)"
	}
}

// estimateMemoryComplexity 基于容器标记和增长操作给出内存复杂度标签
func estimateMemoryComplexity(code string) string {
	found := false
	for _, ind := range memoryIndicators {
		if strings.Contains(code, ind) {
			found = true
			break
		}
	}
	if !found {
		return "O(1)"
	}
	if strings.Contains(code, "resize") || strings.Contains(code, "append") || strings.Contains(code, "push") {
		return "O(n)"
	}
	return "O(1) to O(n)"
}
