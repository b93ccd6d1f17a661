package tutor

import (
	"context"
	"log/slog"
)

// outcome is what a phase handler decides for one turn. The orchestrator
// commits it to the session and shapes the TurnResult from it.
type outcome struct {
	response   string
	phase      Phase
	grade      Grade
	failures   int
	topicID    string
	question   *Question
	isQuestion bool
	mastered   bool
}

// Orchestrator dispatches each turn to the handler for the session's phase
// and owns the live-question table shared by the handlers.
type Orchestrator struct {
	sessions SessionStore
	content  ContentStore
	teacher  Teacher
	grader   AnswerGrader
	intents  *IntentClassifier
	live     *liveQuestions
	logger   *slog.Logger
}

// NewOrchestrator wires the session state machine.
func NewOrchestrator(sessions SessionStore, content ContentStore, teacher Teacher, grader AnswerGrader, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		sessions: sessions,
		content:  content,
		teacher:  teacher,
		grader:   grader,
		intents:  NewIntentClassifier(),
		live:     newLiveQuestions(),
		logger:   logger,
	}
}

// HandleTurn processes one student message: it loads the session, runs the
// phase handler, appends both sides of the exchange to the conversation log
// and persists the updated session. A failed save is logged and swallowed so
// the student still gets a response.
func (o *Orchestrator) HandleTurn(ctx context.Context, sessionID, userMessage string) (*TurnResult, error) {
	sess, err := o.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	knowledge, err := o.content.KnowledgeBySubject(ctx, sess.Subject)
	if err != nil {
		o.logger.Warn("loading knowledge failed, teaching without context",
			"session", sess.ID, "subject", sess.Subject, "error", err)
		knowledge = nil
	}

	sess.Messages = append(sess.Messages, Message{Role: RoleUser, Content: userMessage})

	var out outcome
	switch sess.Phase {
	case PhaseAssessing:
		out = o.handleAssessing(ctx, sess, userMessage, knowledge)
	case PhaseTransferTest:
		out = o.handleTransferTest(ctx, sess, userMessage, knowledge)
	case PhaseRemediation:
		out = o.handleRemediation(ctx, sess, userMessage, knowledge)
	default:
		// Learning, and mastered sessions that keep chatting.
		out = o.handleLearning(ctx, sess, userMessage, knowledge)
	}

	sess.Messages = append(sess.Messages, Message{Role: RoleAssistant, Content: out.response})
	sess.Phase = out.phase
	sess.Grade = out.grade
	sess.ConsecutiveFailures = out.failures
	sess.TopicID = out.topicID

	if err := o.sessions.Save(ctx, sess); err != nil {
		o.logger.Error("saving session failed", "session", sess.ID, "error", err)
	}

	return &TurnResult{
		ResponseText:     out.response,
		Phase:            out.phase,
		Grade:            out.grade,
		IsQuestionPrompt: out.isQuestion,
		LiveQuestion:     out.question,
		Mastered:         out.mastered,
	}, nil
}

// history returns the conversation before the current user message.
func history(sess *Session) []Message {
	if len(sess.Messages) == 0 {
		return nil
	}
	return sess.Messages[:len(sess.Messages)-1]
}
