package testutil

// 测试共用的代码样本

// ValidGo 语法正确的 Go 样本
const ValidGo = `package main

import "fmt"

// Greet 打印问候语
func Greet(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	fmt.Println("Hello, " + name)
	return nil
}
`

// BrokenGo 缺少右大括号的 Go 样本
const BrokenGo = `package main

func Broken() {
	x := 1
`

// ValidPython 语法正确的 Python 样本
const ValidPython = `def greet(name):
    print(f"Hello, {name}")
`

// BrokenPython 缺少冒号的 Python 样本
const BrokenPython = `def greet(name)
    print(name)
`

// NestedLoops 双层嵌套循环样本
const NestedLoops = `def pairs(items):
    for a in items:
        for b in items:
            print(a, b)
`

// CodeReply 包裹在带语言标识代码块中的 LLM 回复
const CodeReply = "Here is the code:\n```go\npackage main\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n```\nEnjoy!"

// TestReply 包裹单元测试的 LLM 回复
const TestReply = "```go\npackage main\n\nimport \"testing\"\n\nfunc TestAdd(t *testing.T) {\n\tif Add(1, 2) != 3 {\n\t\tt.Fatal(\"wrong sum\")\n\t}\n}\n```"

// DocReply JSON 格式的文档回复
const DocReply = `Sure, here it is:
{
    "inline_comments": "// documented code",
    "readme": "A small adder.",
    "api_docs": null,
    "usage_examples": ["Add(1, 2)"]
}`
