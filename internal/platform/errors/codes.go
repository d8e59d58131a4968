// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Report card errors
	CodeReportCardSlotOutOfRange    Code = "REPORT_CARD_SLOT_OUT_OF_RANGE"
	CodeReportCardInputInvalid      Code = "REPORT_CARD_INPUT_INVALID"
	CodeReportCardFormatUnsupported Code = "REPORT_CARD_FORMAT_UNSUPPORTED"
)

// ExitCode maps domain codes to process exit statuses for CLI entry points.
func (c Code) ExitCode() int {
	switch c {
	// Usage errors: bad flags or values
	case CodeReportCardInputInvalid,
		CodeReportCardFormatUnsupported:
		return 2
	default:
		return 1
	}
}
