package grading

import (
	"fmt"
	"strings"

	"github.com/learnloop/learnloop/internal/tutor"
)

const systemPrompt = "你是一位严谨但友善的评估专家，擅长分析学生的学习情况。请用JSON格式输出评估结果。"

// buildPrompt renders the evaluation request for one question and answer.
func buildPrompt(q tutor.Question, answer string) string {
	var b strings.Builder

	b.WriteString("请评估学生对以下问题的回答：\n\n")
	b.WriteString("## 问题信息\n")
	fmt.Fprintf(&b, "- 类型：%s\n", q.Type)
	fmt.Fprintf(&b, "- 题目：%s\n", q.Content)
	fmt.Fprintf(&b, "- 正确答案：%s\n", q.Answer)
	fmt.Fprintf(&b, "- 解析：%s\n", q.Explanation)
	if len(q.Options) > 0 {
		fmt.Fprintf(&b, "- 选项：%s\n", strings.Join(q.Options, " / "))
	}

	b.WriteString("\n## 学生回答\n")
	b.WriteString(answer)

	b.WriteString(`

## 评估要求
请从以下几个维度评估并给出等级：
1. 答案正确性
2. 理解深度
3. 表达清晰度

等级标准：
- A级：完全正确，理解深刻
- B级：基本正确，但有小错误或理解不够深入
- C级：理解有误，需要重新学习`)

	return b.String()
}
