package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnloop/learnloop/ent"
	"github.com/learnloop/learnloop/ent/schema"
	"github.com/learnloop/learnloop/internal/tutor"
)

// ErrSessionNotFound is returned when a session ID has no stored record.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepo persists tutoring sessions. It implements tutor.SessionStore.
type SessionRepo struct {
	client *ent.Client
}

// Create starts a new session for the given student and subject.
func (r *SessionRepo) Create(ctx context.Context, studentID string, subject tutor.Subject) (*tutor.Session, error) {
	if studentID == "" {
		studentID = "default_student"
	}

	row, err := r.client.Session.Create().
		SetID(uuid.NewString()).
		SetStudentID(studentID).
		SetSubject(string(subject)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return sessionFromEnt(row), nil
}

// Load fetches a session by ID.
func (r *SessionRepo) Load(ctx context.Context, id string) (*tutor.Session, error) {
	row, err := r.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return sessionFromEnt(row), nil
}

// Save writes the session's mutable state back to the database.
func (r *SessionRepo) Save(ctx context.Context, s *tutor.Session) error {
	err := r.client.Session.UpdateOneID(s.ID).
		SetTopicID(s.TopicID).
		SetPhase(string(s.Phase)).
		SetGrade(string(s.Grade)).
		SetConsecutiveFailures(s.ConsecutiveFailures).
		SetMessages(messagesToEnt(s.Messages)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
		}
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

func sessionFromEnt(row *ent.Session) *tutor.Session {
	return &tutor.Session{
		ID:                  row.ID,
		StudentID:           row.StudentID,
		Subject:             tutor.Subject(row.Subject),
		TopicID:             row.TopicID,
		Phase:               tutor.Phase(row.Phase),
		Grade:               tutor.NormalizeGrade(row.Grade),
		ConsecutiveFailures: row.ConsecutiveFailures,
		Messages:            messagesFromEnt(row.Messages),
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func messagesFromEnt(in []schema.ChatMessage) []tutor.Message {
	out := make([]tutor.Message, len(in))
	for i, m := range in {
		out[i] = tutor.Message{Role: tutor.Role(m.Role), Content: m.Content}
	}
	return out
}

func messagesToEnt(in []tutor.Message) []schema.ChatMessage {
	out := make([]schema.ChatMessage, len(in))
	for i, m := range in {
		out[i] = schema.ChatMessage{Role: string(m.Role), Content: m.Content}
	}
	return out
}
