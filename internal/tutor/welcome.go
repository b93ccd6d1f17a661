package tutor

import (
	"context"
	"fmt"
	"strings"
)

// WelcomeMessage greets a fresh session with the subject's topic list.
func (o *Orchestrator) WelcomeMessage(ctx context.Context, subject Subject) string {
	topics, err := o.content.TopicsBySubject(ctx, subject)
	if err != nil {
		o.logger.Warn("loading topics for welcome failed", "subject", subject, "error", err)
	}

	var list strings.Builder
	for _, t := range topics {
		fmt.Fprintf(&list, "  • %s\n", t.Name)
	}

	name := subject.DisplayName()
	return fmt.Sprintf(`👋 欢迎来到 %s 学习空间！

我是你的 AI 学习导师，将陪伴你一起学习和进步。

📚 当前可学习的主题：
%s
💡 你可以：
1. 直接告诉我你想学习什么
2. 问我任何关于 %s 的问题
3. 让我给你出题练习

准备好了吗？让我们开始学习之旅！🚀`, name, list.String(), name)
}
