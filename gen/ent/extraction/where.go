// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldID, id))
}

// ProcessorID applies equality check predicate on the "processor_id" field. It's identical to ProcessorIDEQ.
func ProcessorID(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProcessorID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilename, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFormat, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStatus, v))
}

// IrMethod applies equality check predicate on the "ir_method" field. It's identical to IrMethodEQ.
func IrMethod(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldIrMethod, v))
}

// LayoutHash applies equality check predicate on the "layout_hash" field. It's identical to LayoutHashEQ.
func LayoutHash(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldLayoutHash, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidence, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldBand, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSuccess, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldNeedsReview, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFinishedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDurationMs, v))
}

// ProcessorIDEQ applies the EQ predicate on the "processor_id" field.
func ProcessorIDEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProcessorID, v))
}

// ProcessorIDNEQ applies the NEQ predicate on the "processor_id" field.
func ProcessorIDNEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldProcessorID, v))
}

// ProcessorIDIn applies the In predicate on the "processor_id" field.
func ProcessorIDIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldProcessorID, vs...))
}

// ProcessorIDNotIn applies the NotIn predicate on the "processor_id" field.
func ProcessorIDNotIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldProcessorID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldFilename, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldStatus, v))
}

// IrMethodEQ applies the EQ predicate on the "ir_method" field.
func IrMethodEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldIrMethod, v))
}

// IrMethodNEQ applies the NEQ predicate on the "ir_method" field.
func IrMethodNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldIrMethod, v))
}

// IrMethodIn applies the In predicate on the "ir_method" field.
func IrMethodIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldIrMethod, vs...))
}

// IrMethodNotIn applies the NotIn predicate on the "ir_method" field.
func IrMethodNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldIrMethod, vs...))
}

// IrMethodGT applies the GT predicate on the "ir_method" field.
func IrMethodGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldIrMethod, v))
}

// IrMethodGTE applies the GTE predicate on the "ir_method" field.
func IrMethodGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldIrMethod, v))
}

// IrMethodLT applies the LT predicate on the "ir_method" field.
func IrMethodLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldIrMethod, v))
}

// IrMethodLTE applies the LTE predicate on the "ir_method" field.
func IrMethodLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldIrMethod, v))
}

// IrMethodContains applies the Contains predicate on the "ir_method" field.
func IrMethodContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldIrMethod, v))
}

// IrMethodHasPrefix applies the HasPrefix predicate on the "ir_method" field.
func IrMethodHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldIrMethod, v))
}

// IrMethodHasSuffix applies the HasSuffix predicate on the "ir_method" field.
func IrMethodHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldIrMethod, v))
}

// IrMethodIsNil applies the IsNil predicate on the "ir_method" field.
func IrMethodIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldIrMethod))
}

// IrMethodNotNil applies the NotNil predicate on the "ir_method" field.
func IrMethodNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldIrMethod))
}

// IrMethodEqualFold applies the EqualFold predicate on the "ir_method" field.
func IrMethodEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldIrMethod, v))
}

// IrMethodContainsFold applies the ContainsFold predicate on the "ir_method" field.
func IrMethodContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldIrMethod, v))
}

// LayoutHashEQ applies the EQ predicate on the "layout_hash" field.
func LayoutHashEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldLayoutHash, v))
}

// LayoutHashNEQ applies the NEQ predicate on the "layout_hash" field.
func LayoutHashNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldLayoutHash, v))
}

// LayoutHashIn applies the In predicate on the "layout_hash" field.
func LayoutHashIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldLayoutHash, vs...))
}

// LayoutHashNotIn applies the NotIn predicate on the "layout_hash" field.
func LayoutHashNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldLayoutHash, vs...))
}

// LayoutHashGT applies the GT predicate on the "layout_hash" field.
func LayoutHashGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldLayoutHash, v))
}

// LayoutHashGTE applies the GTE predicate on the "layout_hash" field.
func LayoutHashGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldLayoutHash, v))
}

// LayoutHashLT applies the LT predicate on the "layout_hash" field.
func LayoutHashLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldLayoutHash, v))
}

// LayoutHashLTE applies the LTE predicate on the "layout_hash" field.
func LayoutHashLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldLayoutHash, v))
}

// LayoutHashContains applies the Contains predicate on the "layout_hash" field.
func LayoutHashContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldLayoutHash, v))
}

// LayoutHashHasPrefix applies the HasPrefix predicate on the "layout_hash" field.
func LayoutHashHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldLayoutHash, v))
}

// LayoutHashHasSuffix applies the HasSuffix predicate on the "layout_hash" field.
func LayoutHashHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldLayoutHash, v))
}

// LayoutHashIsNil applies the IsNil predicate on the "layout_hash" field.
func LayoutHashIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldLayoutHash))
}

// LayoutHashNotNil applies the NotNil predicate on the "layout_hash" field.
func LayoutHashNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldLayoutHash))
}

// LayoutHashEqualFold applies the EqualFold predicate on the "layout_hash" field.
func LayoutHashEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldLayoutHash, v))
}

// LayoutHashContainsFold applies the ContainsFold predicate on the "layout_hash" field.
func LayoutHashContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldLayoutHash, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldOutput))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldIssues))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldConfidence))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldBand, v))
}

// BandContains applies the Contains predicate on the "band" field.
func BandContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldBand, v))
}

// BandHasPrefix applies the HasPrefix predicate on the "band" field.
func BandHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldBand, v))
}

// BandHasSuffix applies the HasSuffix predicate on the "band" field.
func BandHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldBand, v))
}

// BandIsNil applies the IsNil predicate on the "band" field.
func BandIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldBand))
}

// BandNotNil applies the NotNil predicate on the "band" field.
func BandNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldBand))
}

// BandEqualFold applies the EqualFold predicate on the "band" field.
func BandEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldBand, v))
}

// BandContainsFold applies the ContainsFold predicate on the "band" field.
func BandContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldBand, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldSuccess, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldNeedsReview, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldFinishedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldDurationMs))
}

// HasProcessor applies the HasEdge predicate on the "processor" edge.
func HasProcessor() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessorTable, ProcessorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessorWith applies the HasEdge predicate on the "processor" edge with a given conditions (other predicates).
func HasProcessorWith(preds ...predicate.Processor) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newProcessorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.NotPredicates(p))
}
