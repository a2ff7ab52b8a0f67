package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CreateAppointment books a slot. The backend validates slot availability;
// the returned object is the authoritative post-booking state.
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	if req.DoctorID == 0 || req.PatientID == 0 {
		return nil, fmt.Errorf("reserve: doctor and patient ids are required")
	}
	if req.AppointmentTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("reserve: appointment start and end times are required")
	}
	data, _, err := c.invoke(ctx, "appointments.create", http.MethodPost, "/appointments", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Appointment]("appointments.create", data)
}

// AppointmentByID fetches a single appointment.
func (c *Client) AppointmentByID(ctx context.Context, id int64) (*Appointment, error) {
	data, _, err := c.invoke(ctx, "appointments.get", http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Appointment]("appointments.get", data)
}

// PatientAppointments lists all appointments for a patient.
func (c *Client) PatientAppointments(ctx context.Context, patientID int64) ([]Appointment, error) {
	data, _, err := c.invoke(ctx, "appointments.patient", http.MethodGet, fmt.Sprintf("/appointments/patient/%d", patientID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("appointments.patient", data)
}

// UpcomingPatientAppointments lists a patient's future appointments.
func (c *Client) UpcomingPatientAppointments(ctx context.Context, patientID int64) ([]Appointment, error) {
	data, _, err := c.invoke(ctx, "appointments.patient_upcoming", http.MethodGet, fmt.Sprintf("/appointments/patient/%d/upcoming", patientID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("appointments.patient_upcoming", data)
}

// NextPatientAppointment returns the patient's next appointment, or nil when
// the backend answers 204 No Content (no upcoming appointment).
func (c *Client) NextPatientAppointment(ctx context.Context, patientID int64) (*Appointment, error) {
	data, status, err := c.invoke(ctx, "appointments.patient_next", http.MethodGet, fmt.Sprintf("/appointments/patient/%d/next", patientID), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent || len(data) == 0 {
		return nil, nil
	}
	return decodeJSON[Appointment]("appointments.patient_next", data)
}

// DoctorAppointments lists all appointments for a doctor.
func (c *Client) DoctorAppointments(ctx context.Context, doctorID int64) ([]Appointment, error) {
	data, _, err := c.invoke(ctx, "appointments.doctor", http.MethodGet, fmt.Sprintf("/appointments/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("appointments.doctor", data)
}

// UpcomingDoctorAppointments lists a doctor's future appointments.
func (c *Client) UpcomingDoctorAppointments(ctx context.Context, doctorID int64) ([]Appointment, error) {
	data, _, err := c.invoke(ctx, "appointments.doctor_upcoming", http.MethodGet, fmt.Sprintf("/appointments/doctor/%d/upcoming", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("appointments.doctor_upcoming", data)
}

// DoctorAppointmentsByDate lists a doctor's appointments on a given day.
func (c *Client) DoctorAppointmentsByDate(ctx context.Context, doctorID int64, date time.Time) ([]Appointment, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))
	data, _, err := c.invoke(ctx, "appointments.doctor_by_date", http.MethodGet, fmt.Sprintf("/appointments/doctor/%d/date", doctorID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("appointments.doctor_by_date", data)
}

// UpdateAppointmentStatus moves an appointment to a new status. The reason is
// only meaningful for cancellations and no-shows. The returned object is the
// server's view and should replace any local copy.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status AppointmentStatus, reason string) (*Appointment, error) {
	q := url.Values{}
	q.Set("status", string(status))
	if reason != "" {
		q.Set("reason", reason)
	}
	data, _, err := c.invoke(ctx, "appointments.update_status", http.MethodPatch, fmt.Sprintf("/appointments/%d/status", id), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Appointment]("appointments.update_status", data)
}

// RescheduleAppointment moves an appointment to a new time window.
func (c *Client) RescheduleAppointment(ctx context.Context, id int64, newStart, newEnd time.Time) (*Appointment, error) {
	q := url.Values{}
	q.Set("newDateTime", WireTime(newStart))
	q.Set("newEndTime", WireTime(newEnd))
	data, _, err := c.invoke(ctx, "appointments.reschedule", http.MethodPatch, fmt.Sprintf("/appointments/%d/reschedule", id), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Appointment]("appointments.reschedule", data)
}

// CancelAppointment cancels an appointment, optionally recording a reason.
func (c *Client) CancelAppointment(ctx context.Context, id int64, reason string) error {
	q := url.Values{}
	if reason != "" {
		q.Set("reason", reason)
	}
	_, _, err := c.invoke(ctx, "appointments.cancel", http.MethodDelete, fmt.Sprintf("/appointments/%d", id), q, nil)
	return err
}

// CheckSlotAvailability asks the backend whether the window is still free.
// Advisory only: the create call re-validates under the backend's own lock.
func (c *Client) CheckSlotAvailability(ctx context.Context, doctorID int64, start, end time.Time) (bool, error) {
	q := url.Values{}
	q.Set("doctorId", strconv.FormatInt(doctorID, 10))
	q.Set("startTime", WireTime(start))
	q.Set("endTime", WireTime(end))
	data, _, err := c.invoke(ctx, "appointments.availability_check", http.MethodGet, "/appointments/availability/check", q, nil)
	if err != nil {
		return false, err
	}
	available, err := decodeJSON[bool]("appointments.availability_check", data)
	if err != nil {
		return false, err
	}
	return *available, nil
}
