package tutor

import (
	"context"
	"strings"
)

// handleLearning teaches in free conversation. A practice intent switches to
// assessment; otherwise the message may select a topic by naming it, and the
// teacher answers.
func (o *Orchestrator) handleLearning(ctx context.Context, sess *Session, userMessage string, knowledge []KnowledgeItem) outcome {
	if o.intents.WantsPractice(userMessage) {
		return o.startAssessment(ctx, sess)
	}

	topicID := sess.TopicID
	topics, err := o.content.TopicsBySubject(ctx, sess.Subject)
	if err != nil {
		o.logger.Warn("loading topics failed", "session", sess.ID, "error", err)
	}
	for _, t := range topics {
		if (t.Name != "" && strings.Contains(userMessage, t.Name)) ||
			(t.ID != "" && strings.Contains(userMessage, t.ID)) {
			topicID = t.ID
			break
		}
	}

	response := o.teacher.Teach(ctx, sess.Subject, knowledge, history(sess), userMessage)

	return outcome{
		response: response,
		phase:    PhaseLearning,
		grade:    sess.Grade,
		failures: sess.ConsecutiveFailures,
		topicID:  topicID,
	}
}

// startAssessment draws a practice question and poses it. Without questions
// for the current scope the session stays in learning.
func (o *Orchestrator) startAssessment(ctx context.Context, sess *Session) outcome {
	var (
		pool []Question
		err  error
	)
	if sess.TopicID != "" {
		pool, err = o.content.QuestionsByTopic(ctx, sess.Subject, sess.TopicID)
	} else {
		pool, err = o.content.QuestionsBySubject(ctx, sess.Subject)
	}
	if err != nil {
		o.logger.Error("loading question pool failed", "session", sess.ID, "error", err)
	}

	if len(pool) == 0 {
		return outcome{
			response: "📚 当前主题暂无练习题，让我们继续学习吧！",
			phase:    PhaseLearning,
			grade:    sess.Grade,
			failures: sess.ConsecutiveFailures,
			topicID:  sess.TopicID,
		}
	}

	q := pickQuestion(pool)
	o.live.bind(sess.ID, kindAssessment, &q)

	return outcome{
		response: "📝 好的，让我们来做一道练习题！\n\n" + formatQuestion(q) +
			"\n请输入你的答案（需要提示就说“给我提示”）：",
		phase:      PhaseAssessing,
		grade:      sess.Grade,
		failures:   sess.ConsecutiveFailures,
		topicID:    sess.TopicID,
		question:   &q,
		isQuestion: true,
	}
}
