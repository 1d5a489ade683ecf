// Code generated by ent, DO NOT EDIT.

package processor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the processor type in the database.
	Label = "processor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldLayoutHash holds the string denoting the layout_hash field in the database.
	FieldLayoutHash = "layout_hash"
	// FieldRules holds the string denoting the rules field in the database.
	FieldRules = "rules"
	// FieldTemplate holds the string denoting the template field in the database.
	FieldTemplate = "template"
	// FieldSuccessCount holds the string denoting the success_count field in the database.
	FieldSuccessCount = "success_count"
	// FieldFailureCount holds the string denoting the failure_count field in the database.
	FieldFailureCount = "failure_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExamples holds the string denoting the examples edge name in mutations.
	EdgeExamples = "examples"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// Table holds the table name of the processor in the database.
	Table = "processors"
	// ExamplesTable is the table that holds the examples relation/edge.
	ExamplesTable = "examples"
	// ExamplesInverseTable is the table name for the Example entity.
	// It exists in this package in order to avoid circular dependency with the "example" package.
	ExamplesInverseTable = "examples"
	// ExamplesColumn is the table column denoting the examples relation/edge.
	ExamplesColumn = "processor_id"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extractions"
	// ExtractionsInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionsInverseTable = "extractions"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "processor_id"
)

// Columns holds all SQL columns for processor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDocumentType,
	FieldVersion,
	FieldLayoutHash,
	FieldRules,
	FieldTemplate,
	FieldSuccessCount,
	FieldFailureCount,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultSuccessCount holds the default value on creation for the "success_count" field.
	DefaultSuccessCount int
	// SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	SuccessCountValidator func(int) error
	// DefaultFailureCount holds the default value on creation for the "failure_count" field.
	DefaultFailureCount int
	// FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	FailureCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Processor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByLayoutHash orders the results by the layout_hash field.
func ByLayoutHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayoutHash, opts...).ToFunc()
}

// ByTemplate orders the results by the template field.
func ByTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplate, opts...).ToFunc()
}

// BySuccessCount orders the results by the success_count field.
func BySuccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCount, opts...).ToFunc()
}

// ByFailureCount orders the results by the failure_count field.
func ByFailureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExamplesCount orders the results by examples count.
func ByExamplesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExamplesStep(), opts...)
	}
}

// ByExamples orders the results by examples terms.
func ByExamples(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExamplesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExamplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExamplesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExamplesTable, ExamplesColumn),
	)
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
