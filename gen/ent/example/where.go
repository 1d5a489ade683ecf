// Code generated by ent, DO NOT EDIT.

package example

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldLTE(FieldID, id))
}

// ProcessorID applies equality check predicate on the "processor_id" field. It's identical to ProcessorIDEQ.
func ProcessorID(v uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldProcessorID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldFilename, v))
}

// LayoutHash applies equality check predicate on the "layout_hash" field. It's identical to LayoutHashEQ.
func LayoutHash(v string) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldLayoutHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessorIDEQ applies the EQ predicate on the "processor_id" field.
func ProcessorIDEQ(v uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldProcessorID, v))
}

// ProcessorIDNEQ applies the NEQ predicate on the "processor_id" field.
func ProcessorIDNEQ(v uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldNEQ(FieldProcessorID, v))
}

// ProcessorIDIn applies the In predicate on the "processor_id" field.
func ProcessorIDIn(vs ...uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldIn(FieldProcessorID, vs...))
}

// ProcessorIDNotIn applies the NotIn predicate on the "processor_id" field.
func ProcessorIDNotIn(vs ...uuid.UUID) predicate.Example {
	return predicate.Example(sql.FieldNotIn(FieldProcessorID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Example {
	return predicate.Example(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Example {
	return predicate.Example(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Example {
	return predicate.Example(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Example {
	return predicate.Example(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Example {
	return predicate.Example(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Example {
	return predicate.Example(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Example {
	return predicate.Example(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Example {
	return predicate.Example(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Example {
	return predicate.Example(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Example {
	return predicate.Example(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Example {
	return predicate.Example(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Example {
	return predicate.Example(sql.FieldContainsFold(FieldFilename, v))
}

// LayoutHashEQ applies the EQ predicate on the "layout_hash" field.
func LayoutHashEQ(v string) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldLayoutHash, v))
}

// LayoutHashNEQ applies the NEQ predicate on the "layout_hash" field.
func LayoutHashNEQ(v string) predicate.Example {
	return predicate.Example(sql.FieldNEQ(FieldLayoutHash, v))
}

// LayoutHashIn applies the In predicate on the "layout_hash" field.
func LayoutHashIn(vs ...string) predicate.Example {
	return predicate.Example(sql.FieldIn(FieldLayoutHash, vs...))
}

// LayoutHashNotIn applies the NotIn predicate on the "layout_hash" field.
func LayoutHashNotIn(vs ...string) predicate.Example {
	return predicate.Example(sql.FieldNotIn(FieldLayoutHash, vs...))
}

// LayoutHashGT applies the GT predicate on the "layout_hash" field.
func LayoutHashGT(v string) predicate.Example {
	return predicate.Example(sql.FieldGT(FieldLayoutHash, v))
}

// LayoutHashGTE applies the GTE predicate on the "layout_hash" field.
func LayoutHashGTE(v string) predicate.Example {
	return predicate.Example(sql.FieldGTE(FieldLayoutHash, v))
}

// LayoutHashLT applies the LT predicate on the "layout_hash" field.
func LayoutHashLT(v string) predicate.Example {
	return predicate.Example(sql.FieldLT(FieldLayoutHash, v))
}

// LayoutHashLTE applies the LTE predicate on the "layout_hash" field.
func LayoutHashLTE(v string) predicate.Example {
	return predicate.Example(sql.FieldLTE(FieldLayoutHash, v))
}

// LayoutHashContains applies the Contains predicate on the "layout_hash" field.
func LayoutHashContains(v string) predicate.Example {
	return predicate.Example(sql.FieldContains(FieldLayoutHash, v))
}

// LayoutHashHasPrefix applies the HasPrefix predicate on the "layout_hash" field.
func LayoutHashHasPrefix(v string) predicate.Example {
	return predicate.Example(sql.FieldHasPrefix(FieldLayoutHash, v))
}

// LayoutHashHasSuffix applies the HasSuffix predicate on the "layout_hash" field.
func LayoutHashHasSuffix(v string) predicate.Example {
	return predicate.Example(sql.FieldHasSuffix(FieldLayoutHash, v))
}

// LayoutHashIsNil applies the IsNil predicate on the "layout_hash" field.
func LayoutHashIsNil() predicate.Example {
	return predicate.Example(sql.FieldIsNull(FieldLayoutHash))
}

// LayoutHashNotNil applies the NotNil predicate on the "layout_hash" field.
func LayoutHashNotNil() predicate.Example {
	return predicate.Example(sql.FieldNotNull(FieldLayoutHash))
}

// LayoutHashEqualFold applies the EqualFold predicate on the "layout_hash" field.
func LayoutHashEqualFold(v string) predicate.Example {
	return predicate.Example(sql.FieldEqualFold(FieldLayoutHash, v))
}

// LayoutHashContainsFold applies the ContainsFold predicate on the "layout_hash" field.
func LayoutHashContainsFold(v string) predicate.Example {
	return predicate.Example(sql.FieldContainsFold(FieldLayoutHash, v))
}

// SynthesisReportIsNil applies the IsNil predicate on the "synthesis_report" field.
func SynthesisReportIsNil() predicate.Example {
	return predicate.Example(sql.FieldIsNull(FieldSynthesisReport))
}

// SynthesisReportNotNil applies the NotNil predicate on the "synthesis_report" field.
func SynthesisReportNotNil() predicate.Example {
	return predicate.Example(sql.FieldNotNull(FieldSynthesisReport))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Example {
	return predicate.Example(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Example {
	return predicate.Example(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Example {
	return predicate.Example(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProcessor applies the HasEdge predicate on the "processor" edge.
func HasProcessor() predicate.Example {
	return predicate.Example(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessorTable, ProcessorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessorWith applies the HasEdge predicate on the "processor" edge with a given conditions (other predicates).
func HasProcessorWith(preds ...predicate.Processor) predicate.Example {
	return predicate.Example(func(s *sql.Selector) {
		step := newProcessorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Example) predicate.Example {
	return predicate.Example(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Example) predicate.Example {
	return predicate.Example(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Example) predicate.Example {
	return predicate.Example(sql.NotPredicates(p))
}
