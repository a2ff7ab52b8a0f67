// Package booking implements the client-side booking workflow: the slot
// selection policy, the legacy visit-notes codec, and the step-based flow
// that drives a booking from date selection to a confirmed appointment.
package booking

import (
	"regexp"
	"strings"
)

// noteSeparator joins the visit reason and the optional free-text notes into
// the single legacy notes column the backend stores.
const noteSeparator = " | Additional notes: "

// noteSplitPattern accepts historical variants of the separator: any inner
// whitespace, "note" or "notes", any casing.
var noteSplitPattern = regexp.MustCompile(`(?i)\s*\|\s*additional notes?:\s*`)

// VisitNotes is the structured form of an appointment's notes field. Reason
// is the visit reason chosen at booking time; AdditionalNotes is the optional
// free text.
type VisitNotes struct {
	Reason          string
	AdditionalNotes string
}

// EncodeNotes combines a reason and optional notes into the wire form. Empty
// notes produce the bare reason with no separator.
func EncodeNotes(reason, notes string) string {
	reason = strings.TrimSpace(reason)
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return reason
	}
	return reason + noteSeparator + notes
}

// Encode is the wire form of n.
func (n VisitNotes) Encode() string {
	return EncodeNotes(n.Reason, n.AdditionalNotes)
}

// DecodeNotes splits a stored notes value back into its parts. Values without
// a separator are all reason. Splitting is tolerant of separator variants
// written by older clients.
func DecodeNotes(raw string) VisitNotes {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return VisitNotes{}
	}
	parts := noteSplitPattern.Split(raw, 2)
	if len(parts) == 1 {
		return VisitNotes{Reason: strings.TrimSpace(parts[0])}
	}
	return VisitNotes{
		Reason:          strings.TrimSpace(parts[0]),
		AdditionalNotes: strings.TrimSpace(parts[1]),
	}
}
