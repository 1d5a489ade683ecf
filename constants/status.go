package constants

// ExtractionStatus is the canonical status for rows in extractions.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	ExtractionQueued  ExtractionStatus = "QUEUED"  // queued for processing
	ExtractionRunning ExtractionStatus = "RUNNING" // in progress
	ExtractionIROK    ExtractionStatus = "IR_OK"   // stage 1 completed (document IR built)
	ExtractionDone    ExtractionStatus = "DONE"    // stage 2 completed (fields extracted)
	ExtractionFailed  ExtractionStatus = "FAILED"  // terminal failure
)

// ExtractionStatuses lists every stable status value.
var ExtractionStatuses = []string{
	string(ExtractionQueued),
	string(ExtractionRunning),
	string(ExtractionIROK),
	string(ExtractionDone),
	string(ExtractionFailed),
}

// ConfidenceBand buckets a 0-100 confidence score for review routing.
type ConfidenceBand string

const (
	BandHigh   ConfidenceBand = "HIGH"   // >= 90, publishable as-is
	BandReview ConfidenceBand = "REVIEW" // 70-89, human check recommended
	BandLow    ConfidenceBand = "LOW"    // < 70, likely layout drift
)

// ConfidenceBands lists every band value.
var ConfidenceBands = []string{
	string(BandHigh),
	string(BandReview),
	string(BandLow),
}

// BandFor returns the review band for a 0-100 confidence score.
func BandFor(score float64) ConfidenceBand {
	switch {
	case score >= 90:
		return BandHigh
	case score >= 70:
		return BandReview
	default:
		return BandLow
	}
}
