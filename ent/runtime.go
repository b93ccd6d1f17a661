// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/learnloop/learnloop/ent/knowledgeitem"
	"github.com/learnloop/learnloop/ent/llmrequestevent"
	"github.com/learnloop/learnloop/ent/question"
	"github.com/learnloop/learnloop/ent/schema"
	"github.com/learnloop/learnloop/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	knowledgeitemFields := schema.KnowledgeItem{}.Fields()
	_ = knowledgeitemFields
	// knowledgeitemDescSubject is the schema descriptor for subject field.
	knowledgeitemDescSubject := knowledgeitemFields[1].Descriptor()
	// knowledgeitem.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	knowledgeitem.SubjectValidator = knowledgeitemDescSubject.Validators[0].(func(string) error)
	// knowledgeitemDescTopicID is the schema descriptor for topic_id field.
	knowledgeitemDescTopicID := knowledgeitemFields[2].Descriptor()
	// knowledgeitem.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	knowledgeitem.TopicIDValidator = knowledgeitemDescTopicID.Validators[0].(func(string) error)
	// knowledgeitemDescTopicName is the schema descriptor for topic_name field.
	knowledgeitemDescTopicName := knowledgeitemFields[3].Descriptor()
	// knowledgeitem.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	knowledgeitem.TopicNameValidator = knowledgeitemDescTopicName.Validators[0].(func(string) error)
	// knowledgeitemDescTitle is the schema descriptor for title field.
	knowledgeitemDescTitle := knowledgeitemFields[4].Descriptor()
	// knowledgeitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	knowledgeitem.TitleValidator = knowledgeitemDescTitle.Validators[0].(func(string) error)
	// knowledgeitemDescContent is the schema descriptor for content field.
	knowledgeitemDescContent := knowledgeitemFields[5].Descriptor()
	// knowledgeitem.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	knowledgeitem.ContentValidator = knowledgeitemDescContent.Validators[0].(func(string) error)
	// knowledgeitemDescCreatedAt is the schema descriptor for created_at field.
	knowledgeitemDescCreatedAt := knowledgeitemFields[9].Descriptor()
	// knowledgeitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeitem.DefaultCreatedAt = knowledgeitemDescCreatedAt.Default.(func() time.Time)
	// knowledgeitemDescID is the schema descriptor for id field.
	knowledgeitemDescID := knowledgeitemFields[0].Descriptor()
	// knowledgeitem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	knowledgeitem.IDValidator = knowledgeitemDescID.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescSubject is the schema descriptor for subject field.
	questionDescSubject := questionFields[1].Descriptor()
	// question.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	question.SubjectValidator = questionDescSubject.Validators[0].(func(string) error)
	// questionDescTopicID is the schema descriptor for topic_id field.
	questionDescTopicID := questionFields[2].Descriptor()
	// question.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	question.TopicIDValidator = questionDescTopicID.Validators[0].(func(string) error)
	// questionDescTopicName is the schema descriptor for topic_name field.
	questionDescTopicName := questionFields[3].Descriptor()
	// question.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	question.TopicNameValidator = questionDescTopicName.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[4].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(int) error)
	// questionDescContent is the schema descriptor for content field.
	questionDescContent := questionFields[6].Descriptor()
	// question.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	question.ContentValidator = questionDescContent.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[8].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[9].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescTransfer is the schema descriptor for transfer field.
	questionDescTransfer := questionFields[10].Descriptor()
	// question.DefaultTransfer holds the default value on creation for the transfer field.
	question.DefaultTransfer = questionDescTransfer.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[11].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStudentID is the schema descriptor for student_id field.
	sessionDescStudentID := sessionFields[1].Descriptor()
	// session.DefaultStudentID holds the default value on creation for the student_id field.
	session.DefaultStudentID = sessionDescStudentID.Default.(string)
	// sessionDescSubject is the schema descriptor for subject field.
	sessionDescSubject := sessionFields[2].Descriptor()
	// session.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	session.SubjectValidator = sessionDescSubject.Validators[0].(func(string) error)
	// sessionDescTopicID is the schema descriptor for topic_id field.
	sessionDescTopicID := sessionFields[3].Descriptor()
	// session.DefaultTopicID holds the default value on creation for the topic_id field.
	session.DefaultTopicID = sessionDescTopicID.Default.(string)
	// sessionDescPhase is the schema descriptor for phase field.
	sessionDescPhase := sessionFields[4].Descriptor()
	// session.DefaultPhase holds the default value on creation for the phase field.
	session.DefaultPhase = sessionDescPhase.Default.(string)
	// sessionDescGrade is the schema descriptor for grade field.
	sessionDescGrade := sessionFields[5].Descriptor()
	// session.DefaultGrade holds the default value on creation for the grade field.
	session.DefaultGrade = sessionDescGrade.Default.(string)
	// sessionDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	sessionDescConsecutiveFailures := sessionFields[6].Descriptor()
	// session.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	session.DefaultConsecutiveFailures = sessionDescConsecutiveFailures.Default.(int)
	// session.ConsecutiveFailuresValidator is a validator for the "consecutive_failures" field. It is called by the builders before save.
	session.ConsecutiveFailuresValidator = sessionDescConsecutiveFailures.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[8].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[9].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
}
