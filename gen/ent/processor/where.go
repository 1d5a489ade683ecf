// Code generated by ent, DO NOT EDIT.

package processor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldName, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldDocumentType, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldVersion, v))
}

// LayoutHash applies equality check predicate on the "layout_hash" field. It's identical to LayoutHashEQ.
func LayoutHash(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldLayoutHash, v))
}

// Template applies equality check predicate on the "template" field. It's identical to TemplateEQ.
func Template(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldTemplate, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldSuccessCount, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldFailureCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContainsFold(FieldName, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContainsFold(FieldDocumentType, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldVersion, v))
}

// LayoutHashEQ applies the EQ predicate on the "layout_hash" field.
func LayoutHashEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldLayoutHash, v))
}

// LayoutHashNEQ applies the NEQ predicate on the "layout_hash" field.
func LayoutHashNEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldLayoutHash, v))
}

// LayoutHashIn applies the In predicate on the "layout_hash" field.
func LayoutHashIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldLayoutHash, vs...))
}

// LayoutHashNotIn applies the NotIn predicate on the "layout_hash" field.
func LayoutHashNotIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldLayoutHash, vs...))
}

// LayoutHashGT applies the GT predicate on the "layout_hash" field.
func LayoutHashGT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldLayoutHash, v))
}

// LayoutHashGTE applies the GTE predicate on the "layout_hash" field.
func LayoutHashGTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldLayoutHash, v))
}

// LayoutHashLT applies the LT predicate on the "layout_hash" field.
func LayoutHashLT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldLayoutHash, v))
}

// LayoutHashLTE applies the LTE predicate on the "layout_hash" field.
func LayoutHashLTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldLayoutHash, v))
}

// LayoutHashContains applies the Contains predicate on the "layout_hash" field.
func LayoutHashContains(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContains(FieldLayoutHash, v))
}

// LayoutHashHasPrefix applies the HasPrefix predicate on the "layout_hash" field.
func LayoutHashHasPrefix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasPrefix(FieldLayoutHash, v))
}

// LayoutHashHasSuffix applies the HasSuffix predicate on the "layout_hash" field.
func LayoutHashHasSuffix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasSuffix(FieldLayoutHash, v))
}

// LayoutHashIsNil applies the IsNil predicate on the "layout_hash" field.
func LayoutHashIsNil() predicate.Processor {
	return predicate.Processor(sql.FieldIsNull(FieldLayoutHash))
}

// LayoutHashNotNil applies the NotNil predicate on the "layout_hash" field.
func LayoutHashNotNil() predicate.Processor {
	return predicate.Processor(sql.FieldNotNull(FieldLayoutHash))
}

// LayoutHashEqualFold applies the EqualFold predicate on the "layout_hash" field.
func LayoutHashEqualFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEqualFold(FieldLayoutHash, v))
}

// LayoutHashContainsFold applies the ContainsFold predicate on the "layout_hash" field.
func LayoutHashContainsFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContainsFold(FieldLayoutHash, v))
}

// TemplateEQ applies the EQ predicate on the "template" field.
func TemplateEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldTemplate, v))
}

// TemplateNEQ applies the NEQ predicate on the "template" field.
func TemplateNEQ(v string) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldTemplate, v))
}

// TemplateIn applies the In predicate on the "template" field.
func TemplateIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldTemplate, vs...))
}

// TemplateNotIn applies the NotIn predicate on the "template" field.
func TemplateNotIn(vs ...string) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldTemplate, vs...))
}

// TemplateGT applies the GT predicate on the "template" field.
func TemplateGT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldTemplate, v))
}

// TemplateGTE applies the GTE predicate on the "template" field.
func TemplateGTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldTemplate, v))
}

// TemplateLT applies the LT predicate on the "template" field.
func TemplateLT(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldTemplate, v))
}

// TemplateLTE applies the LTE predicate on the "template" field.
func TemplateLTE(v string) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldTemplate, v))
}

// TemplateContains applies the Contains predicate on the "template" field.
func TemplateContains(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContains(FieldTemplate, v))
}

// TemplateHasPrefix applies the HasPrefix predicate on the "template" field.
func TemplateHasPrefix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasPrefix(FieldTemplate, v))
}

// TemplateHasSuffix applies the HasSuffix predicate on the "template" field.
func TemplateHasSuffix(v string) predicate.Processor {
	return predicate.Processor(sql.FieldHasSuffix(FieldTemplate, v))
}

// TemplateIsNil applies the IsNil predicate on the "template" field.
func TemplateIsNil() predicate.Processor {
	return predicate.Processor(sql.FieldIsNull(FieldTemplate))
}

// TemplateNotNil applies the NotNil predicate on the "template" field.
func TemplateNotNil() predicate.Processor {
	return predicate.Processor(sql.FieldNotNull(FieldTemplate))
}

// TemplateEqualFold applies the EqualFold predicate on the "template" field.
func TemplateEqualFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldEqualFold(FieldTemplate, v))
}

// TemplateContainsFold applies the ContainsFold predicate on the "template" field.
func TemplateContainsFold(v string) predicate.Processor {
	return predicate.Processor(sql.FieldContainsFold(FieldTemplate, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldSuccessCount, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldFailureCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Processor {
	return predicate.Processor(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExamples applies the HasEdge predicate on the "examples" edge.
func HasExamples() predicate.Processor {
	return predicate.Processor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExamplesTable, ExamplesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExamplesWith applies the HasEdge predicate on the "examples" edge with a given conditions (other predicates).
func HasExamplesWith(preds ...predicate.Example) predicate.Processor {
	return predicate.Processor(func(s *sql.Selector) {
		step := newExamplesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.Processor {
	return predicate.Processor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.Processor {
	return predicate.Processor(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Processor) predicate.Processor {
	return predicate.Processor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Processor) predicate.Processor {
	return predicate.Processor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Processor) predicate.Processor {
	return predicate.Processor(sql.NotPredicates(p))
}
