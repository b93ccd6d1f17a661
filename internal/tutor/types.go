// Package tutor implements the session state machine that drives a student
// through the teach → assess → transfer-test → remediate learning cycle.
package tutor

import (
	"context"
	"fmt"
	"time"
)

// Subject identifies one of the five supported school subjects.
type Subject string

const (
	SubjectChinese  Subject = "chinese"
	SubjectMath     Subject = "math"
	SubjectEnglish  Subject = "english"
	SubjectHistory  Subject = "history"
	SubjectPolitics Subject = "politics"
)

// AllSubjects lists every subject in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectChinese, SubjectMath, SubjectEnglish, SubjectHistory, SubjectPolitics}
}

// subjectNames maps subjects to their Chinese display names.
var subjectNames = map[Subject]string{
	SubjectChinese:  "语文",
	SubjectMath:     "数学",
	SubjectEnglish:  "英语",
	SubjectHistory:  "历史",
	SubjectPolitics: "政治",
}

// DisplayName returns the localized subject name, falling back to the raw value.
func (s Subject) DisplayName() string {
	if n, ok := subjectNames[s]; ok {
		return n
	}
	return string(s)
}

// ParseSubject validates a subject string.
func ParseSubject(v string) (Subject, error) {
	s := Subject(v)
	if _, ok := subjectNames[s]; !ok {
		return "", fmt.Errorf("unknown subject: %q", v)
	}
	return s, nil
}

// QuestionType classifies how a question is answered and graded.
type QuestionType string

const (
	TypeChoice      QuestionType = "choice"
	TypeJudgment    QuestionType = "judgment"
	TypeQA          QuestionType = "qa"
	TypeFill        QuestionType = "fill"
	TypeApplication QuestionType = "application"
)

// Grade is the coarse three-tier mastery signal driving phase transitions.
type Grade string

const (
	GradeA Grade = "A" // deep understanding, ready for transfer testing
	GradeB Grade = "B" // basically correct, needs more practice
	GradeC Grade = "C" // insufficient understanding, relearn
)

// NormalizeGrade coerces arbitrary grade strings into the closed {A,B,C} set.
// Anything unrecognized becomes C.
func NormalizeGrade(v string) Grade {
	switch Grade(v) {
	case GradeA:
		return GradeA
	case GradeB:
		return GradeB
	default:
		return GradeC
	}
}

// Phase is the session's position in the learning cycle.
type Phase string

const (
	PhaseLearning     Phase = "learning"
	PhaseAssessing    Phase = "assessing"
	PhaseTransferTest Phase = "transfer_test"
	PhaseMastered     Phase = "mastered"
	PhaseRemediation  Phase = "remediation"
)

// Role identifies a message sender in the conversation log.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session's conversation log.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is one student-subject conversation. It is loaded at the start of
// a turn and written back by the orchestrator after the phase handler runs.
type Session struct {
	ID                  string    `json:"id"`
	StudentID           string    `json:"student_id"`
	Subject             Subject   `json:"subject"`
	TopicID             string    `json:"topic_id,omitempty"`
	Phase               Phase     `json:"phase"`
	Grade               Grade     `json:"grade"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Messages            []Message `json:"messages"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Question is an authored content record, read-only to the tutor.
type Question struct {
	ID          string       `json:"id"`
	Subject     Subject      `json:"subject"`
	TopicID     string       `json:"topic_id"`
	TopicName   string       `json:"topic_name"`
	Type        QuestionType `json:"question_type"`
	Difficulty  int          `json:"difficulty"`
	Content     string       `json:"content"`
	Options     []string     `json:"options,omitempty"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	Transfer    bool         `json:"transfer"`
}

// KnowledgeItem is reference content supplied to the LLM as teaching context.
type KnowledgeItem struct {
	ID             string   `json:"id"`
	Subject        Subject  `json:"subject"`
	TopicID        string   `json:"topic_id"`
	TopicName      string   `json:"topic_name"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	KeyPoints      []string `json:"key_points,omitempty"`
	CommonMistakes []string `json:"common_mistakes,omitempty"`
	IntuitionPumps []string `json:"intuition_pumps,omitempty"`
}

// Topic is a subject subdivision derived from the knowledge base.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TurnResult is the per-turn contract returned to the transport layer.
type TurnResult struct {
	ResponseText     string    `json:"response"`
	Phase            Phase     `json:"phase"`
	Grade            Grade     `json:"grade"`
	IsQuestionPrompt bool      `json:"is_question"`
	LiveQuestion     *Question `json:"question,omitempty"`
	Mastered         bool      `json:"mastered"`
}

// GradedAnswer is the verdict for one student answer. The diagnostic fields
// are only present when the model supplies them.
type GradedAnswer struct {
	IsCorrect             bool   `json:"is_correct"`
	Grade                 Grade  `json:"grade"`
	Feedback              string `json:"feedback"`
	Explanation           string `json:"explanation,omitempty"`
	ErrorCategory         string `json:"error_category,omitempty"`
	ErrorDescription      string `json:"error_description,omitempty"`
	ImprovementSuggestion string `json:"improvement_suggestion,omitempty"`
}

// AnswerGrader evaluates a student's answer against a question. It must not
// fail: implementations degrade to deterministic checks instead.
type AnswerGrader interface {
	Evaluate(ctx context.Context, q Question, answer string) GradedAnswer
}

// Teacher generates tutoring prose. Implementations degrade to a friendly
// notice instead of failing, so the returned text is always presentable.
type Teacher interface {
	Teach(ctx context.Context, subject Subject, knowledge []KnowledgeItem, history []Message, userMessage string) string
	HintsFor(ctx context.Context, subject Subject, knowledge []KnowledgeItem, q Question) string
	Remediation(ctx context.Context, subject Subject, knowledge []KnowledgeItem, topicName, errorCategory string, failures int) string
}

// ContentStore supplies authored questions, knowledge and topics.
type ContentStore interface {
	QuestionsBySubject(ctx context.Context, subject Subject) ([]Question, error)
	QuestionsByTopic(ctx context.Context, subject Subject, topicID string) ([]Question, error)
	TransferQuestions(ctx context.Context, subject Subject, topicID string) ([]Question, error)
	KnowledgeBySubject(ctx context.Context, subject Subject) ([]KnowledgeItem, error)
	TopicsBySubject(ctx context.Context, subject Subject) ([]Topic, error)
}

// SessionStore persists sessions between turns.
type SessionStore interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}
