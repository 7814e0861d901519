package model

// Language 支持的编程语言
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangCpp        Language = "cpp"
	LangRuby       Language = "ruby"
	LangSwift      Language = "swift"
)

// Languages 全部支持的编程语言，顺序固定
var Languages = []Language{
	LangPython,
	LangJavaScript,
	LangTypeScript,
	LangJava,
	LangCSharp,
	LangGo,
	LangRust,
	LangCpp,
	LangRuby,
	LangSwift,
}

// Valid 检查语言标识是否受支持
func (l Language) Valid() bool {
	for _, lang := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// NaturalLanguage 文档使用的自然语言
type NaturalLanguage string

const (
	NaturalEnglish    NaturalLanguage = "english"
	NaturalSpanish    NaturalLanguage = "spanish"
	NaturalFrench     NaturalLanguage = "french"
	NaturalGerman     NaturalLanguage = "german"
	NaturalChinese    NaturalLanguage = "chinese"
	NaturalJapanese   NaturalLanguage = "japanese"
	NaturalPortuguese NaturalLanguage = "portuguese"
	NaturalItalian    NaturalLanguage = "italian"
	NaturalRussian    NaturalLanguage = "russian"
	NaturalArabic     NaturalLanguage = "arabic"
)

var NaturalLanguages = []NaturalLanguage{
	NaturalEnglish,
	NaturalSpanish,
	NaturalFrench,
	NaturalGerman,
	NaturalChinese,
	NaturalJapanese,
	NaturalPortuguese,
	NaturalItalian,
	NaturalRussian,
	NaturalArabic,
}

// Valid 检查自然语言标识是否受支持
func (l NaturalLanguage) Valid() bool {
	for _, lang := range NaturalLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// LanguageInfo 语言能力表条目
type LanguageInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// ProgrammingLanguageInfos 编程语言能力表
var ProgrammingLanguageInfos = []LanguageInfo{
	{Code: "python", Name: "Python", Version: "3.8+"},
	{Code: "javascript", Name: "JavaScript", Version: "ES6+"},
	{Code: "typescript", Name: "TypeScript", Version: "4.0+"},
	{Code: "java", Name: "Java", Version: "11+"},
	{Code: "csharp", Name: "C#", Version: ".NET 6+"},
	{Code: "go", Name: "Go", Version: "1.16+"},
	{Code: "rust", Name: "Rust", Version: "2021 Edition"},
	{Code: "cpp", Name: "C++", Version: "C++17"},
	{Code: "ruby", Name: "Ruby", Version: "3.0+"},
	{Code: "swift", Name: "Swift", Version: "5.0+"},
}

// NaturalLanguageInfos 自然语言能力表
var NaturalLanguageInfos = []LanguageInfo{
	{Code: "english", Name: "English"},
	{Code: "spanish", Name: "Spanish"},
	{Code: "french", Name: "French"},
	{Code: "german", Name: "German"},
	{Code: "chinese", Name: "Chinese (Simplified)"},
	{Code: "japanese", Name: "Japanese"},
	{Code: "portuguese", Name: "Portuguese"},
	{Code: "italian", Name: "Italian"},
	{Code: "russian", Name: "Russian"},
	{Code: "arabic", Name: "Arabic"},
}

// TestFrameworks 各语言可用的测试框架
var TestFrameworks = map[Language][]string{
	LangPython:     {"pytest", "unittest", "nose2", "doctest"},
	LangJavaScript: {"jest", "mocha", "jasmine", "vitest", "cypress"},
	LangTypeScript: {"jest", "mocha", "jasmine", "vitest", "cypress"},
	LangJava:       {"junit", "testng", "mockito", "assertj"},
	LangCSharp:     {"xunit", "nunit", "mstest"},
	LangGo:         {"testing", "testify", "ginkgo"},
	LangRust:       {"cargo test", "proptest"},
	LangCpp:        {"gtest", "catch2", "boost.test"},
	LangRuby:       {"rspec", "minitest", "cucumber"},
	LangSwift:      {"xctest", "quick"},
}

// DefaultTestFramework 语言的默认测试框架
func DefaultTestFramework(lang Language) string {
	defaults := map[Language]string{
		LangPython:     "pytest",
		LangJavaScript: "jest",
		LangTypeScript: "jest",
		LangJava:       "junit",
		LangCSharp:     "xunit",
		LangGo:         "testing",
		LangRust:       "cargo test",
		LangCpp:        "gtest",
		LangRuby:       "rspec",
		LangSwift:      "xctest",
	}
	if fw, ok := defaults[lang]; ok {
		return fw
	}
	return "unittest"
}

// CommentMarkers 各语言的行首注释标记，统计代码行数时使用
var CommentMarkers = map[Language][]string{
	LangPython:     {"#"},
	LangJavaScript: {"//", "/*", "*/"},
	LangTypeScript: {"//", "/*", "*/"},
	LangJava:       {"//", "/*", "*/"},
	LangCSharp:     {"//", "/*", "*/"},
	LangGo:         {"//", "/*", "*/"},
	LangRust:       {"//", "/*", "*/"},
	LangCpp:        {"//", "/*", "*/"},
	LangRuby:       {"#"},
	LangSwift:      {"//", "/*", "*/"},
}

// DefaultCommentMarkers 未知语言的注释标记
var DefaultCommentMarkers = []string{"//", "#"}
