package grading

import (
	"fmt"

	"github.com/learnloop/learnloop/internal/tutor"
)

// Feedback renders canned feedback for a verdict, used when the model
// produced no usable feedback text.
func Feedback(q tutor.Question, isCorrect bool, grade tutor.Grade) string {
	if isCorrect {
		if grade == tutor.GradeA {
			return fmt.Sprintf("🎉 太棒了！你完全理解了这个知识点！\n\n📝 解析：%s", q.Explanation)
		}
		return fmt.Sprintf("✅ 答对了！但还可以理解得更深入。\n\n📝 解析：%s", q.Explanation)
	}
	return fmt.Sprintf("❌ 这道题做错了，没关系，让我们一起分析一下。\n\n✨ 正确答案：%s\n📝 解析：%s", q.Answer, q.Explanation)
}
