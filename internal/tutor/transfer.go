package tutor

import "context"

// startTransferTest poses a transfer question after an A-grade answer. A
// topic with no transfer questions counts as mastered outright.
func (o *Orchestrator) startTransferTest(ctx context.Context, sess *Session, prevFeedback string) outcome {
	pool, err := o.content.TransferQuestions(ctx, sess.Subject, sess.TopicID)
	if err != nil {
		o.logger.Error("loading transfer pool failed", "session", sess.ID, "error", err)
	}

	if len(pool) == 0 {
		return outcome{
			response: prevFeedback + "\n\n🎊 太棒了！你已经掌握了这个知识点！\n\n想要学习其他内容吗？",
			phase:    PhaseMastered,
			grade:    GradeA,
			topicID:  sess.TopicID,
			mastered: true,
		}
	}

	q := pickQuestion(pool)
	o.live.bind(sess.ID, kindTransfer, &q)

	return outcome{
		response: prevFeedback + "\n\n---\n\n🚀 **迁移测试**\n\n你对基础知识掌握得很好！现在挑战一道应用题，看看你能否举一反三：\n\n" +
			formatQuestion(q) + "\n请认真思考后作答（需要提示就说“给我提示”）：",
		phase:      PhaseTransferTest,
		grade:      GradeA,
		topicID:    sess.TopicID,
		question:   &q,
		isQuestion: true,
	}
}

// handleTransferTest grades the transfer answer. Passing (correct, or graded
// A or B) masters the topic; failing drops back to learning with grade B.
func (o *Orchestrator) handleTransferTest(ctx context.Context, sess *Session, userMessage string, knowledge []KnowledgeItem) outcome {
	q := o.live.lookup(sess.ID, kindTransfer)
	if q == nil {
		return outcome{
			response: "未找到迁移测试题目，我们先回到学习吧。",
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
			phase:      PhaseTransferTest,
			grade:      sess.Grade,
			failures:   sess.ConsecutiveFailures,
			topicID:    sess.TopicID,
			question:   q,
			isQuestion: true,
		}
	}

	verdict := o.grader.Evaluate(ctx, *q, userMessage)
	o.live.clear(sess.ID, kindTransfer)

	if verdict.IsCorrect || verdict.Grade == GradeA || verdict.Grade == GradeB {
		return outcome{
			response: "🎊 **恭喜！迁移测试通过！**\n\n" + verdict.Feedback +
				"\n\n✅ 你已经真正掌握了这个知识点！\n\n想继续学习其他内容吗？",
			phase:    PhaseMastered,
			grade:    GradeA,
			topicID:  sess.TopicID,
			mastered: true,
		}
	}

	return outcome{
		response: wrongAnswerText(verdict) + "\n\n迁移测试未通过，没关系！我们回顾一下基础知识再挑战。\n\n你想我从哪部分开始讲？",
		phase:    PhaseLearning,
		grade:    GradeB,
		topicID:  sess.TopicID,
	}
}
