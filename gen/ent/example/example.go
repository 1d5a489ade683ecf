// Code generated by ent, DO NOT EDIT.

package example

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the example type in the database.
	Label = "example"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProcessorID holds the string denoting the processor_id field in the database.
	FieldProcessorID = "processor_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldLayoutHash holds the string denoting the layout_hash field in the database.
	FieldLayoutHash = "layout_hash"
	// FieldIrJSON holds the string denoting the ir_json field in the database.
	FieldIrJSON = "ir_json"
	// FieldDesiredOutput holds the string denoting the desired_output field in the database.
	FieldDesiredOutput = "desired_output"
	// FieldSynthesisReport holds the string denoting the synthesis_report field in the database.
	FieldSynthesisReport = "synthesis_report"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProcessor holds the string denoting the processor edge name in mutations.
	EdgeProcessor = "processor"
	// Table holds the table name of the example in the database.
	Table = "examples"
	// ProcessorTable is the table that holds the processor relation/edge.
	ProcessorTable = "examples"
	// ProcessorInverseTable is the table name for the Processor entity.
	// It exists in this package in order to avoid circular dependency with the "processor" package.
	ProcessorInverseTable = "processors"
	// ProcessorColumn is the table column denoting the processor relation/edge.
	ProcessorColumn = "processor_id"
)

// Columns holds all SQL columns for example fields.
var Columns = []string{
	FieldID,
	FieldProcessorID,
	FieldFilename,
	FieldLayoutHash,
	FieldIrJSON,
	FieldDesiredOutput,
	FieldSynthesisReport,
	FieldCreatedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Example queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessorID orders the results by the processor_id field.
func ByProcessorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessorID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByLayoutHash orders the results by the layout_hash field.
func ByLayoutHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayoutHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessorField orders the results by processor field.
func ByProcessorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessorStep(), sql.OrderByField(field, opts...))
	}
}
func newProcessorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProcessorTable, ProcessorColumn),
	)
}
