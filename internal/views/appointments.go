// Package views derives display-ready projections from API objects: status
// labels, visit-note decoding, record categories, and dashboard aggregates.
package views

import (
	"time"

	"github.com/medreserve/medreserve-go/internal/booking"
	"github.com/medreserve/medreserve-go/internal/reserve"
)

// AppointmentView is an appointment shaped for rendering.
type AppointmentView struct {
	ID            int64
	DoctorName    string
	PatientName   string
	ServiceName   string
	Start         time.Time
	End           time.Time
	Duration      time.Duration
	Status        reserve.AppointmentStatus
	StatusLabel   string
	Notes         booking.VisitNotes
	CancelReason  string
	Reschedulable bool
}

// defaultDuration is assumed when the backend omits the end time.
const defaultDuration = 30 * time.Minute

// NewAppointmentView projects one appointment for display.
func NewAppointmentView(appt reserve.Appointment) AppointmentView {
	start := appt.AppointmentTime.Time
	end := appt.EndTime.Time
	duration := defaultDuration
	if !start.IsZero() && end.After(start) {
		duration = end.Sub(start)
	}
	return AppointmentView{
		ID:            appt.ID,
		DoctorName:    appt.DoctorName,
		PatientName:   appt.PatientName,
		ServiceName:   appt.ServiceName,
		Start:         start,
		End:           end,
		Duration:      duration,
		Status:        appt.Status,
		StatusLabel:   appt.Status.Display(),
		Notes:         booking.DecodeNotes(appt.Notes),
		CancelReason:  appt.CancellationReason,
		Reschedulable: !appt.Status.Terminal(),
	}
}

// AppointmentViews projects a list of appointments.
func AppointmentViews(appts []reserve.Appointment) []AppointmentView {
	out := make([]AppointmentView, len(appts))
	for i, appt := range appts {
		out[i] = NewAppointmentView(appt)
	}
	return out
}

// AppointmentStats are the per-doctor dashboard counters.
type AppointmentStats struct {
	Today     int
	Upcoming  int
	Pending   int
	Completed int
}

// ComputeStats tallies a doctor's appointment list relative to now.
func ComputeStats(appts []reserve.Appointment, now time.Time) AppointmentStats {
	var stats AppointmentStats
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, appt := range appts {
		start := appt.AppointmentTime.Time
		switch appt.Status {
		case reserve.AppointmentPending:
			stats.Pending++
		case reserve.AppointmentCompleted:
			stats.Completed++
		}
		if appt.Status == reserve.AppointmentCancelled || appt.Status == reserve.AppointmentNoShow {
			continue
		}
		if !start.Before(dayStart) && start.Before(dayEnd) {
			stats.Today++
		}
		if start.After(now) {
			stats.Upcoming++
		}
	}
	return stats
}

// FilterUpcoming keeps appointments starting after now, excluding terminal
// states.
func FilterUpcoming(appts []reserve.Appointment, now time.Time) []reserve.Appointment {
	out := make([]reserve.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.Status.Terminal() {
			continue
		}
		if appt.AppointmentTime.After(now) {
			out = append(out, appt)
		}
	}
	return out
}

// FilterByStatus keeps appointments in the given status.
func FilterByStatus(appts []reserve.Appointment, status reserve.AppointmentStatus) []reserve.Appointment {
	out := make([]reserve.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out
}
