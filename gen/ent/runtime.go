// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/statline/statline/db/ent/schema"
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/processor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exampleFields := schema.Example{}.Fields()
	_ = exampleFields
	// exampleDescFilename is the schema descriptor for filename field.
	exampleDescFilename := exampleFields[2].Descriptor()
	// example.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	example.FilenameValidator = exampleDescFilename.Validators[0].(func(string) error)
	// exampleDescCreatedAt is the schema descriptor for created_at field.
	exampleDescCreatedAt := exampleFields[7].Descriptor()
	// example.DefaultCreatedAt holds the default value on creation for the created_at field.
	example.DefaultCreatedAt = exampleDescCreatedAt.Default.(func() time.Time)
	// exampleDescID is the schema descriptor for id field.
	exampleDescID := exampleFields[0].Descriptor()
	// example.DefaultID holds the default value on creation for the id field.
	example.DefaultID = exampleDescID.Default.(func() uuid.UUID)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescFilename is the schema descriptor for filename field.
	extractionDescFilename := extractionFields[2].Descriptor()
	// extraction.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	extraction.FilenameValidator = extractionDescFilename.Validators[0].(func(string) error)
	// extractionDescFormat is the schema descriptor for format field.
	extractionDescFormat := extractionFields[3].Descriptor()
	// extraction.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extraction.FormatValidator = func() func(string) error {
		validators := extractionDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescStatus is the schema descriptor for status field.
	extractionDescStatus := extractionFields[4].Descriptor()
	// extraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extraction.StatusValidator = func() func(string) error {
		validators := extractionDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescBand is the schema descriptor for band field.
	extractionDescBand := extractionFields[10].Descriptor()
	// extraction.BandValidator is a validator for the "band" field. It is called by the builders before save.
	extraction.BandValidator = extractionDescBand.Validators[0].(func(string) error)
	// extractionDescSuccess is the schema descriptor for success field.
	extractionDescSuccess := extractionFields[11].Descriptor()
	// extraction.DefaultSuccess holds the default value on creation for the success field.
	extraction.DefaultSuccess = extractionDescSuccess.Default.(bool)
	// extractionDescNeedsReview is the schema descriptor for needs_review field.
	extractionDescNeedsReview := extractionFields[12].Descriptor()
	// extraction.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extraction.DefaultNeedsReview = extractionDescNeedsReview.Default.(bool)
	// extractionDescStartedAt is the schema descriptor for started_at field.
	extractionDescStartedAt := extractionFields[14].Descriptor()
	// extraction.DefaultStartedAt holds the default value on creation for the started_at field.
	extraction.DefaultStartedAt = extractionDescStartedAt.Default.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	processorFields := schema.Processor{}.Fields()
	_ = processorFields
	// processorDescName is the schema descriptor for name field.
	processorDescName := processorFields[1].Descriptor()
	// processor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	processor.NameValidator = processorDescName.Validators[0].(func(string) error)
	// processorDescDocumentType is the schema descriptor for document_type field.
	processorDescDocumentType := processorFields[2].Descriptor()
	// processor.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	processor.DocumentTypeValidator = func() func(string) error {
		validators := processorDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processorDescVersion is the schema descriptor for version field.
	processorDescVersion := processorFields[3].Descriptor()
	// processor.DefaultVersion holds the default value on creation for the version field.
	processor.DefaultVersion = processorDescVersion.Default.(int)
	// processor.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	processor.VersionValidator = processorDescVersion.Validators[0].(func(int) error)
	// processorDescSuccessCount is the schema descriptor for success_count field.
	processorDescSuccessCount := processorFields[7].Descriptor()
	// processor.DefaultSuccessCount holds the default value on creation for the success_count field.
	processor.DefaultSuccessCount = processorDescSuccessCount.Default.(int)
	// processor.SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	processor.SuccessCountValidator = processorDescSuccessCount.Validators[0].(func(int) error)
	// processorDescFailureCount is the schema descriptor for failure_count field.
	processorDescFailureCount := processorFields[8].Descriptor()
	// processor.DefaultFailureCount holds the default value on creation for the failure_count field.
	processor.DefaultFailureCount = processorDescFailureCount.Default.(int)
	// processor.FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	processor.FailureCountValidator = processorDescFailureCount.Validators[0].(func(int) error)
	// processorDescCreatedAt is the schema descriptor for created_at field.
	processorDescCreatedAt := processorFields[9].Descriptor()
	// processor.DefaultCreatedAt holds the default value on creation for the created_at field.
	processor.DefaultCreatedAt = processorDescCreatedAt.Default.(func() time.Time)
	// processorDescUpdatedAt is the schema descriptor for updated_at field.
	processorDescUpdatedAt := processorFields[10].Descriptor()
	// processor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processor.DefaultUpdatedAt = processorDescUpdatedAt.Default.(func() time.Time)
	// processor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processor.UpdateDefaultUpdatedAt = processorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processorDescID is the schema descriptor for id field.
	processorDescID := processorFields[0].Descriptor()
	// processor.DefaultID holds the default value on creation for the id field.
	processor.DefaultID = processorDescID.Default.(func() uuid.UUID)
}
