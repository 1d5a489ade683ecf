package constants

// Location hints accepted on anchors. Occurrence hints select within the
// ordered match list; the rest filter by page geometry.
const (
	HintTopThird         = "top_third"
	HintTopHalf          = "top_half"
	HintBottomHalf       = "bottom_half"
	HintLeftHalf         = "left_half"
	HintRightHalf        = "right_half"
	HintFirstOccurrence  = "first_occurrence"
	HintSecondOccurrence = "second_occurrence"
	HintLastOccurrence   = "last_occurrence"
)

// LocationHints lists every accepted anchor location hint.
var LocationHints = []string{
	HintTopThird,
	HintTopHalf,
	HintBottomHalf,
	HintLeftHalf,
	HintRightHalf,
	HintFirstOccurrence,
	HintSecondOccurrence,
	HintLastOccurrence,
}

// Anchor pattern matching modes.
const (
	PatternContains = "contains"
	PatternExact    = "exact"
	PatternRegex    = "regex"
)

// Region shapes. A list region is a single column of items, one per row.
const (
	RegionTable    = "table"
	RegionKeyValue = "key_value"
	RegionList     = "list"
	RegionFreeText = "free_text"
)

// Transforms applicable to extracted values.
const (
	TransformNormalizeName = "normalize_name"
	TransformToInt         = "to_int"
	TransformToFloat       = "to_float"
	TransformStrip         = "strip"
	TransformUpper         = "upper"
	TransformLower         = "lower"
	TransformLastNameOnly  = "last_name_only"
)

// Transforms lists every accepted transform name.
var Transforms = []string{
	TransformNormalizeName,
	TransformToInt,
	TransformToFloat,
	TransformStrip,
	TransformUpper,
	TransformLower,
	TransformLastNameOnly,
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)
