// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extraction type in the database.
	Label = "extraction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProcessorID holds the string denoting the processor_id field in the database.
	FieldProcessorID = "processor_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIrMethod holds the string denoting the ir_method field in the database.
	FieldIrMethod = "ir_method"
	// FieldLayoutHash holds the string denoting the layout_hash field in the database.
	FieldLayoutHash = "layout_hash"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldBand holds the string denoting the band field in the database.
	FieldBand = "band"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeProcessor holds the string denoting the processor edge name in mutations.
	EdgeProcessor = "processor"
	// Table holds the table name of the extraction in the database.
	Table = "extractions"
	// ProcessorTable is the table that holds the processor relation/edge.
	ProcessorTable = "extractions"
	// ProcessorInverseTable is the table name for the Processor entity.
	// It exists in this package in order to avoid circular dependency with the "processor" package.
	ProcessorInverseTable = "processors"
	// ProcessorColumn is the table column denoting the processor relation/edge.
	ProcessorColumn = "processor_id"
)

// Columns holds all SQL columns for extraction fields.
var Columns = []string{
	FieldID,
	FieldProcessorID,
	FieldFilename,
	FieldFormat,
	FieldStatus,
	FieldIrMethod,
	FieldLayoutHash,
	FieldOutput,
	FieldIssues,
	FieldConfidence,
	FieldBand,
	FieldSuccess,
	FieldNeedsReview,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
	FieldDurationMs,
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
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// BandValidator is a validator for the "band" field. It is called by the builders before save.
	BandValidator func(string) error
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Extraction queries.
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

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIrMethod orders the results by the ir_method field.
func ByIrMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrMethod, opts...).ToFunc()
}

// ByLayoutHash orders the results by the layout_hash field.
func ByLayoutHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayoutHash, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByBand orders the results by the band field.
func ByBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBand, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
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
