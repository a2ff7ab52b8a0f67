package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/medreserve/medreserve-go/internal/reserve"
	"github.com/medreserve/medreserve-go/pkg/logging"
)

// Step identifies where a booking flow currently is.
type Step int

const (
	StepSelectDate Step = iota
	StepSelectSlot
	StepDetails
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepSelectDate:
		return "select-date"
	case StepSelectSlot:
		return "select-slot"
	case StepDetails:
		return "details"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// slotBooker is the slice of the API client the flow needs.
type slotBooker interface {
	ScheduleWithStatus(ctx context.Context, doctorID int64, start, end time.Time) ([]reserve.ScheduleSlot, error)
	CreateAppointment(ctx context.Context, req reserve.CreateAppointmentRequest) (*reserve.Appointment, error)
	CancelAppointment(ctx context.Context, id int64, reason string) error
}

// Flow walks one patient booking from date selection through confirmation.
// Every transition is driven by a server response; a failed call leaves the
// flow exactly where it was. Flow is not safe for concurrent use.
type Flow struct {
	api       slotBooker
	logger    *logging.Logger
	doctorID  int64
	patientID int64
	serviceID *int64

	step     Step
	date     time.Time
	slots    []reserve.ScheduleSlot
	selected *reserve.ScheduleSlot
	booked   *reserve.Appointment
}

// NewFlow starts a booking flow for one patient and doctor.
func NewFlow(api slotBooker, logger *logging.Logger, doctorID, patientID int64) *Flow {
	if logger == nil {
		logger = logging.Default()
	}
	return &Flow{
		api:       api,
		logger:    logger,
		doctorID:  doctorID,
		patientID: patientID,
		step:      StepSelectDate,
	}
}

// WithService attaches a service to the eventual booking.
func (f *Flow) WithService(serviceID int64) *Flow {
	f.serviceID = &serviceID
	return f
}

// Step returns the flow's current step.
func (f *Flow) Step() Step { return f.step }

// Slots returns the slots loaded for the chosen date.
func (f *Flow) Slots() []reserve.ScheduleSlot { return f.slots }

// Selected returns the currently selected slot, or nil.
func (f *Flow) Selected() *reserve.ScheduleSlot { return f.selected }

// Booked returns the confirmed appointment once the flow is done.
func (f *Flow) Booked() *reserve.Appointment { return f.booked }

// LoadSlots fetches the doctor's tagged slots for one calendar day and moves
// the flow to slot selection. Any prior selection is discarded.
func (f *Flow) LoadSlots(ctx context.Context, date time.Time) error {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	slots, err := f.api.ScheduleWithStatus(ctx, f.doctorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("booking: load slots: %w", err)
	}
	f.date = dayStart
	f.slots = slots
	f.selected = nil
	f.step = StepSelectSlot
	f.logger.Debug("slots loaded", "doctor_id", f.doctorID, "date", dayStart.Format("2006-01-02"), "count", len(slots))
	return nil
}

// SelectSlot picks one of the loaded slots by id. Only FREE slots are
// accepted; picking anything else is rejected without changing the flow.
func (f *Flow) SelectSlot(slotID int64) error {
	if f.step != StepSelectSlot && f.step != StepDetails {
		return fmt.Errorf("booking: cannot select a slot at step %s", f.step)
	}
	for i := range f.slots {
		if f.slots[i].ID != slotID {
			continue
		}
		if !Selectable(f.slots[i]) {
			return fmt.Errorf("booking: slot %d is not available", slotID)
		}
		f.selected = &f.slots[i]
		f.step = StepDetails
		return nil
	}
	return fmt.Errorf("booking: slot %d is not in the loaded schedule", slotID)
}

// Book submits the appointment with the given visit reason and optional
// notes. On success the server's appointment object becomes the flow's
// result; on failure the selection and step are untouched so the patient can
// retry or pick another slot.
func (f *Flow) Book(ctx context.Context, reason, notes string) (*reserve.Appointment, error) {
	if f.step != StepDetails || f.selected == nil {
		return nil, fmt.Errorf("booking: no slot selected")
	}
	if reason == "" {
		return nil, fmt.Errorf("booking: a visit reason is required")
	}
	req := reserve.CreateAppointmentRequest{
		DoctorID:        f.doctorID,
		PatientID:       f.patientID,
		AppointmentTime: f.selected.StartTime,
		EndTime:         f.selected.EndTime,
		ServiceID:       f.serviceID,
		Notes:           EncodeNotes(reason, notes),
	}
	appt, err := f.api.CreateAppointment(ctx, req)
	if err != nil {
		f.logger.Warn("booking failed", "doctor_id", f.doctorID, "slot_id", f.selected.ID, "error", err)
		return nil, fmt.Errorf("booking: create appointment: %w", err)
	}
	f.booked = appt
	f.step = StepDone
	f.logger.Info("appointment booked", "appointment_id", appt.ID, "status", appt.Status)
	return appt, nil
}

// CancelBooked cancels the appointment this flow created. Only a successful
// server response clears the result; a failed cancel leaves the flow's state
// exactly as it was.
func (f *Flow) CancelBooked(ctx context.Context, reason string) error {
	if f.booked == nil {
		return fmt.Errorf("booking: nothing booked")
	}
	if err := f.api.CancelAppointment(ctx, f.booked.ID, reason); err != nil {
		f.logger.Warn("cancel failed", "appointment_id", f.booked.ID, "error", err)
		return fmt.Errorf("booking: cancel appointment: %w", err)
	}
	f.logger.Info("appointment cancelled", "appointment_id", f.booked.ID)
	f.booked = nil
	f.selected = nil
	f.step = StepSelectDate
	return nil
}
