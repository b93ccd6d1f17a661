// Code generated by ent, DO NOT EDIT.

package knowledgeitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/learnloop/learnloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldSubject, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTopicID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTopicName, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldCreatedAt, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldSubject, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldTopicID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldTopicName, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldContainsFold(FieldContent, v))
}

// KeyPointsIsNil applies the IsNil predicate on the "key_points" field.
func KeyPointsIsNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIsNull(FieldKeyPoints))
}

// KeyPointsNotNil applies the NotNil predicate on the "key_points" field.
func KeyPointsNotNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotNull(FieldKeyPoints))
}

// CommonMistakesIsNil applies the IsNil predicate on the "common_mistakes" field.
func CommonMistakesIsNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIsNull(FieldCommonMistakes))
}

// CommonMistakesNotNil applies the NotNil predicate on the "common_mistakes" field.
func CommonMistakesNotNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotNull(FieldCommonMistakes))
}

// IntuitionPumpsIsNil applies the IsNil predicate on the "intuition_pumps" field.
func IntuitionPumpsIsNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIsNull(FieldIntuitionPumps))
}

// IntuitionPumpsNotNil applies the NotNil predicate on the "intuition_pumps" field.
func IntuitionPumpsNotNil() predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotNull(FieldIntuitionPumps))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeItem) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeItem) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeItem) predicate.KnowledgeItem {
	return predicate.KnowledgeItem(sql.NotPredicates(p))
}
