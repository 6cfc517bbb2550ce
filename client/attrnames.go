/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * Well-known IPP attribute names
 */

package ippclient

// Operation-attributes names used by builders in this package
const (
	AttrAttributesCharset         = "attributes-charset"
	AttrAttributesNaturalLanguage = "attributes-natural-language"
	AttrPrinterURI                = "printer-uri"
	AttrRequestedAttributes       = "requested-attributes"
	AttrJobName                   = "job-name"
	AttrRequestingUserName        = "requesting-user-name"
	AttrJobID                     = "job-id"
	AttrLastDocument              = "last-document"
	AttrDocumentFormat            = "document-format"
	AttrLimit                     = "limit"
	AttrWhichJobs                 = "which-jobs"
)

// Printer-attributes and job-attributes names used by the readiness
// check and by the CLI's "status" subcommand
const (
	AttrPrinterName            = "printer-name"
	AttrPrinterState           = "printer-state"
	AttrPrinterStateReasons    = "printer-state-reasons"
	AttrPrinterIsAcceptingJobs = "printer-is-accepting-jobs"
	AttrDeviceURI              = "device-uri"
	AttrJobState               = "job-state"
)

// DefaultCharset and DefaultNaturalLanguage are the values every
// request and response seeds into its operation-attributes group
const (
	DefaultCharset         = "utf-8"
	DefaultNaturalLanguage = "en"
)

// Printer state codes, per RFC 8011 printer-state enum
const (
	PrinterStateIdle       = 3
	PrinterStateProcessing = 4
	PrinterStateStopped    = 5
)

// PrinterStateName renders a printer-state enum value as the name
// used by the IPP model ("idle", "processing", "stopped")
func PrinterStateName(state int) string {
	switch state {
	case PrinterStateIdle:
		return "idle"
	case PrinterStateProcessing:
		return "processing"
	case PrinterStateStopped:
		return "stopped"
	}
	return "unknown"
}

// Job state codes, per RFC 8011 job-state enum
const (
	JobStatePending    = 3
	JobStateHeld       = 4
	JobStateProcessing = 5
	JobStateStopped    = 6
	JobStateCanceled   = 7
	JobStateAborted    = 8
	JobStateCompleted  = 9
)

// JobStateName renders a job-state enum value as its model name
func JobStateName(state int) string {
	switch state {
	case JobStatePending:
		return "pending"
	case JobStateHeld:
		return "held"
	case JobStateProcessing:
		return "processing"
	case JobStateStopped:
		return "stopped"
	case JobStateCanceled:
		return "canceled"
	case JobStateAborted:
		return "aborted"
	case JobStateCompleted:
		return "completed"
	}
	return "unknown"
}
