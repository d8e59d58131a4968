package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                     = "UNKNOWN"
	CodeReportCardSlotOutOfRange    = "REPORT_CARD_SLOT_OUT_OF_RANGE"
	CodeReportCardInputInvalid      = "REPORT_CARD_INPUT_INVALID"
	CodeReportCardFormatUnsupported = "REPORT_CARD_FORMAT_UNSUPPORTED"
)

var enUSMessages = map[Code]string{
	CodeUnknown:                     "An unexpected error occurred.",
	CodeReportCardSlotOutOfRange:    "Course slot {{.Index}} does not exist; slots run from 1 to {{.Max}}.",
	CodeReportCardInputInvalid:      "Cannot read {{.Value}} as report card input.",
	CodeReportCardFormatUnsupported: "Output format {{.Format}} is not supported.",
}
