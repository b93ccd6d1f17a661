package store

import (
	"context"
	"fmt"

	"github.com/learnloop/learnloop/ent"
	"github.com/learnloop/learnloop/ent/knowledgeitem"
	"github.com/learnloop/learnloop/ent/predicate"
	"github.com/learnloop/learnloop/ent/question"
	"github.com/learnloop/learnloop/internal/tutor"
)

// ContentRepo serves authored questions and knowledge. It implements
// tutor.ContentStore.
type ContentRepo struct {
	client *ent.Client
}

// QuestionsBySubject returns all non-transfer questions for a subject.
func (r *ContentRepo) QuestionsBySubject(ctx context.Context, subject tutor.Subject) ([]tutor.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.SubjectEQ(string(subject)),
			question.TransferEQ(false),
		).
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for %s: %w", subject, err)
	}
	return questionsFromEnt(rows), nil
}

// QuestionsByTopic returns non-transfer questions for one topic.
func (r *ContentRepo) QuestionsByTopic(ctx context.Context, subject tutor.Subject, topicID string) ([]tutor.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.SubjectEQ(string(subject)),
			question.TopicIDEQ(topicID),
			question.TransferEQ(false),
		).
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for %s/%s: %w", subject, topicID, err)
	}
	return questionsFromEnt(rows), nil
}

// TransferQuestions returns transfer-flagged questions for one topic, or
// for the whole subject when topicID is empty.
func (r *ContentRepo) TransferQuestions(ctx context.Context, subject tutor.Subject, topicID string) ([]tutor.Question, error) {
	preds := []predicate.Question{
		question.SubjectEQ(string(subject)),
		question.TransferEQ(true),
	}
	if topicID != "" {
		preds = append(preds, question.TopicIDEQ(topicID))
	}

	rows, err := r.client.Question.Query().
		Where(preds...).
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transfer questions for %s/%s: %w", subject, topicID, err)
	}
	return questionsFromEnt(rows), nil
}

// KnowledgeBySubject returns all knowledge items for a subject.
func (r *ContentRepo) KnowledgeBySubject(ctx context.Context, subject tutor.Subject) ([]tutor.KnowledgeItem, error) {
	rows, err := r.client.KnowledgeItem.Query().
		Where(knowledgeitem.SubjectEQ(string(subject))).
		Order(ent.Asc(knowledgeitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query knowledge for %s: %w", subject, err)
	}

	out := make([]tutor.KnowledgeItem, len(rows))
	for i, row := range rows {
		out[i] = tutor.KnowledgeItem{
			ID:             row.ID,
			Subject:        tutor.Subject(row.Subject),
			TopicID:        row.TopicID,
			TopicName:      row.TopicName,
			Title:          row.Title,
			Content:        row.Content,
			KeyPoints:      row.KeyPoints,
			CommonMistakes: row.CommonMistakes,
			IntuitionPumps: row.IntuitionPumps,
		}
	}
	return out, nil
}

// TopicsBySubject derives the topic list from the knowledge base, falling
// back to questions for topics that have no knowledge items yet.
func (r *ContentRepo) TopicsBySubject(ctx context.Context, subject tutor.Subject) ([]tutor.Topic, error) {
	items, err := r.KnowledgeBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	questions, err := r.QuestionsBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var topics []tutor.Topic
	for _, k := range items {
		if !seen[k.TopicID] {
			seen[k.TopicID] = true
			topics = append(topics, tutor.Topic{ID: k.TopicID, Name: k.TopicName})
		}
	}
	for _, q := range questions {
		if !seen[q.TopicID] {
			seen[q.TopicID] = true
			topics = append(topics, tutor.Topic{ID: q.TopicID, Name: q.TopicName})
		}
	}
	return topics, nil
}

// CreateQuestion stores an authored question.
func (r *ContentRepo) CreateQuestion(ctx context.Context, q tutor.Question) error {
	err := r.client.Question.Create().
		SetID(q.ID).
		SetSubject(string(q.Subject)).
		SetTopicID(q.TopicID).
		SetTopicName(q.TopicName).
		SetQuestionType(string(q.Type)).
		SetDifficulty(q.Difficulty).
		SetContent(q.Content).
		SetOptions(q.Options).
		SetAnswer(q.Answer).
		SetExplanation(q.Explanation).
		SetTransfer(q.Transfer).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create question %s: %w", q.ID, err)
	}
	return nil
}

// CreateKnowledge stores an authored knowledge item.
func (r *ContentRepo) CreateKnowledge(ctx context.Context, k tutor.KnowledgeItem) error {
	err := r.client.KnowledgeItem.Create().
		SetID(k.ID).
		SetSubject(string(k.Subject)).
		SetTopicID(k.TopicID).
		SetTopicName(k.TopicName).
		SetTitle(k.Title).
		SetContent(k.Content).
		SetKeyPoints(k.KeyPoints).
		SetCommonMistakes(k.CommonMistakes).
		SetIntuitionPumps(k.IntuitionPumps).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create knowledge item %s: %w", k.ID, err)
	}
	return nil
}

// CountQuestions reports how many questions are stored.
func (r *ContentRepo) CountQuestions(ctx context.Context) (int, error) {
	return r.client.Question.Query().Count(ctx)
}

// CountKnowledge reports how many knowledge items are stored.
func (r *ContentRepo) CountKnowledge(ctx context.Context) (int, error) {
	return r.client.KnowledgeItem.Query().Count(ctx)
}

func questionsFromEnt(rows []*ent.Question) []tutor.Question {
	out := make([]tutor.Question, len(rows))
	for i, row := range rows {
		out[i] = tutor.Question{
			ID:          row.ID,
			Subject:     tutor.Subject(row.Subject),
			TopicID:     row.TopicID,
			TopicName:   row.TopicName,
			Type:        tutor.QuestionType(row.QuestionType),
			Difficulty:  row.Difficulty,
			Content:     row.Content,
			Options:     row.Options,
			Answer:      row.Answer,
			Explanation: row.Explanation,
			Transfer:    row.Transfer,
		}
	}
	return out
}
