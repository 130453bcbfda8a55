// Code generated by ent, DO NOT EDIT.

package documentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSource, v))
}

// Passages applies equality check predicate on the "passages" field. It's identical to PassagesEQ.
func Passages(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldPassages, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldContainsFold(FieldSource, v))
}

// PassagesEQ applies the EQ predicate on the "passages" field.
func PassagesEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldEQ(FieldPassages, v))
}

// PassagesNEQ applies the NEQ predicate on the "passages" field.
func PassagesNEQ(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNEQ(FieldPassages, v))
}

// PassagesIn applies the In predicate on the "passages" field.
func PassagesIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIn(FieldPassages, vs...))
}

// PassagesNotIn applies the NotIn predicate on the "passages" field.
func PassagesNotIn(vs ...int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotIn(FieldPassages, vs...))
}

// PassagesGT applies the GT predicate on the "passages" field.
func PassagesGT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGT(FieldPassages, v))
}

// PassagesGTE applies the GTE predicate on the "passages" field.
func PassagesGTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldGTE(FieldPassages, v))
}

// PassagesLT applies the LT predicate on the "passages" field.
func PassagesLT(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLT(FieldPassages, v))
}

// PassagesLTE applies the LTE predicate on the "passages" field.
func PassagesLTE(v int) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldLTE(FieldPassages, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.FieldNotNull(FieldTopics))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentEvent) predicate.DocumentEvent {
	return predicate.DocumentEvent(sql.NotPredicates(p))
}
