package tutor

import "context"

// handleRemediation resets the failure streak and teaches the student's
// follow-up, always returning to learning with grade C.
func (o *Orchestrator) handleRemediation(ctx context.Context, sess *Session, userMessage string, knowledge []KnowledgeItem) outcome {
	response := o.teacher.Teach(ctx, sess.Subject, knowledge, history(sess), userMessage)

	return outcome{
		response: response,
		phase:    PhaseLearning,
		grade:    GradeC,
		topicID:  sess.TopicID,
	}
}
