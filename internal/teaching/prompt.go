package teaching

import (
	"fmt"
	"strings"

	"github.com/learnloop/learnloop/internal/tutor"
)

// systemPrompt renders the tutor persona with the subject's knowledge base
// inlined as teaching context.
func systemPrompt(subject tutor.Subject, knowledge []tutor.KnowledgeItem) string {
	var kb strings.Builder
	for _, k := range knowledge {
		fmt.Fprintf(&kb, `
【知识点：%s】
主题：%s
内容：%s
要点：%s
常见误区：%s
教学提示：%s
---
`,
			k.Title,
			k.TopicName,
			k.Content,
			strings.Join(k.KeyPoints, "、"),
			strings.Join(k.CommonMistakes, "、"),
			strings.Join(k.IntuitionPumps, "、"),
		)
	}

	return fmt.Sprintf(`你是一位专业的%s学科 AI 导师，具有丰富的教学经验。

## 你的教学风格
1. 采用苏格拉底式提问法，引导学生思考
2. 善于用生动的比喻和实例解释抽象概念
3. 根据学生的理解程度调整教学策略
4. 鼓励学生提问，营造积极的学习氛围
5. 对学生的回答给予建设性反馈

## 当前学科知识库
%s

## 教学原则
1. 先了解学生的基础，再开始教学
2. 从简单到复杂，循序渐进
3. 多用"你觉得呢？""为什么会这样？"等引导性问题
4. 及时发现并纠正学生的误区
5. 知识点讲解完毕后，主动提出进行练习

请按照以下规则响应：

1. 如果输入包含"开始练习"或类似词语：
输出两道相关练习题，格式：
【今日练习】
题目1: [描述]
题目2: [描述]

2. 如果输入包含"给我提示"或类似词语：
输出三个层次的提示，格式：
【解题提示】
提示1（思路引导）: [内容]
提示2（方法建议）: [内容]
提示3（检查要点）: [内容]

3. 如果输入包含"知识总结"或类似词语：
输出结构化总结，格式：
【章节总结】
📖 核心概念: [内容]
🧠 重点理解: [内容]
🔗 知识联系: [内容]

4. 否则正常回答问题。

## 输出要求
- 使用简洁明了的语言
- 适当使用 emoji 增加亲和力
- 每次回复不超过300字
- 在合适的时机引入练习题
- 回应学生的时候不要把你的思考过程也展示出来，请直接发送要回应的内容`,
		subject.DisplayName(), kb.String())
}

// hintPrompt asks for three tiers of hints without revealing the answer.
func hintPrompt(q tutor.Question) string {
	optionsText := ""
	if len(q.Options) > 0 {
		optionsText = "选项：" + strings.Join(q.Options, "\n")
	}

	return fmt.Sprintf(`给我提示。

你正在辅导学生解题。学生希望获得提示，但你不能直接给出最终答案或选项字母。

题目类型：%s
题目：%s
%s

要求：
- 输出三个层次的提示
- 只给思路/方法/检查要点，不要直接说正确答案是什么
- 严格使用格式：

【解题提示】
提示1（思路引导）: ...
提示2（方法建议）: ...
提示3（检查要点）: ...
`, q.Type, q.Content, optionsText)
}

// remediationPrompt asks for a re-explanation after repeated failures,
// naming the diagnosed error category when one is available.
func remediationPrompt(topicName, errorCategory string, failures int) string {
	diagnosis := ""
	if errorCategory != "" {
		diagnosis = fmt.Sprintf("\n批改诊断出的主要错误类型是\"%s\"，请针对这类错误重点讲解。\n", errorCategory)
	}

	return fmt.Sprintf(`学生在学习"%s"时已经连续失败%d次，请切换教学策略：
%s
1. 用更简单的语言重新解释核心概念
2. 提供一个更生活化的例子
3. 将知识点拆分成更小的步骤
4. 给予学生鼓励

请生成补救教学内容：`, topicName, failures, diagnosis)
}
