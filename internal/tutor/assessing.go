package tutor

import "context"

// maxConsecutiveFailures triggers remediation when reached.
const maxConsecutiveFailures = 3

// handleAssessing grades the student's answer to the live question. Hint
// requests are answered without grading. A correct A-grade answer advances
// to the transfer test, other correct answers return to learning, and the
// third wrong answer in a row forces remediation.
func (o *Orchestrator) handleAssessing(ctx context.Context, sess *Session, userMessage string, knowledge []KnowledgeItem) outcome {
	q := o.live.lookup(sess.ID, kindAssessment)
	if q == nil {
		return outcome{
			response: "未找到当前题目，我们重新开始一题练习吧。回复“出题/练习”即可。",
			phase:    PhaseLearning,
			grade:    sess.Grade,
			failures: sess.ConsecutiveFailures,
			topicID:  sess.TopicID,
		}
	}

	if o.intents.WantsHint(userMessage) {
		hints := o.teacher.HintsFor(ctx, sess.Subject, knowledge, *q)
		return outcome{
			response:   hints + "\n\n你可以继续作答：",
			phase:      PhaseAssessing,
			grade:      sess.Grade,
			failures:   sess.ConsecutiveFailures,
			topicID:    sess.TopicID,
			question:   q,
			isQuestion: true,
		}
	}

	verdict := o.grader.Evaluate(ctx, *q, userMessage)

	if verdict.IsCorrect {
		o.live.clear(sess.ID, kindAssessment)
		if verdict.Grade == GradeA {
			return o.startTransferTest(ctx, sess, verdict.Feedback)
		}
		return outcome{
			response: verdict.Feedback + "\n\n继续努力！你想继续学习还是做更多练习？",
			phase:    PhaseLearning,
			grade:    verdict.Grade,
			topicID:  sess.TopicID,
		}
	}

	failures := sess.ConsecutiveFailures + 1

	if failures >= maxConsecutiveFailures {
		remediation := o.teacher.Remediation(ctx, sess.Subject, knowledge, q.TopicName, verdict.ErrorCategory, failures)
		o.live.clear(sess.ID, kindAssessment)
		return outcome{
			response: wrongAnswerText(verdict) + "\n\n---\n\n🔄 让我换一种方式来帮助你理解：\n\n" + remediation,
			phase:    PhaseRemediation,
			grade:    GradeC,
			failures: failures,
			topicID:  sess.TopicID,
		}
	}

	// Stay in assessment so the student can retry or ask for a hint.
	return outcome{
		response:   wrongAnswerText(verdict) + "\n\n别灰心！你可以继续作答，或者说“给我提示”。",
		phase:      PhaseAssessing,
		grade:      verdict.Grade,
		failures:   failures,
		topicID:    sess.TopicID,
		question:   q,
		isQuestion: true,
	}
}

// wrongAnswerText appends the grader's error analysis and improvement
// suggestion, when present, to the feedback shown for an incorrect answer.
func wrongAnswerText(v GradedAnswer) string {
	text := v.Feedback
	if analysis := errorAnalysis(v); analysis != "" {
		text += "\n\n❗ 错误分析：" + analysis
	}
	if v.ImprovementSuggestion != "" {
		text += "\n\n💡 改进建议：" + v.ImprovementSuggestion
	}
	return text
}

// errorAnalysis composes the diagnosed error category and description into
// one line. Either field may be absent.
func errorAnalysis(v GradedAnswer) string {
	switch {
	case v.ErrorCategory != "" && v.ErrorDescription != "":
		return "【" + v.ErrorCategory + "】" + v.ErrorDescription
	case v.ErrorDescription != "":
		return v.ErrorDescription
	default:
		return v.ErrorCategory
	}
}
