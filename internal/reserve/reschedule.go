package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CreateRescheduleRequest files a patient request to move an appointment.
func (c *Client) CreateRescheduleRequest(ctx context.Context, appointmentID int64, requestedStart, requestedEnd time.Time, patientReason string) (*RescheduleRequest, error) {
	q := url.Values{}
	q.Set("appointmentId", strconv.FormatInt(appointmentID, 10))
	q.Set("requestedDateTime", WireTime(requestedStart))
	q.Set("requestedEndTime", WireTime(requestedEnd))
	if patientReason != "" {
		q.Set("patientReason", patientReason)
	}
	data, _, err := c.invoke(ctx, "reschedule.create", http.MethodPost, "/reschedule-requests", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[RescheduleRequest]("reschedule.create", data)
}

// PatientRescheduleRequests lists a patient's reschedule requests.
func (c *Client) PatientRescheduleRequests(ctx context.Context, patientID int64) ([]RescheduleRequest, error) {
	data, _, err := c.invoke(ctx, "reschedule.patient", http.MethodGet, fmt.Sprintf("/reschedule-requests/patient/%d", patientID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[RescheduleRequest]("reschedule.patient", data)
}

// DoctorRescheduleRequests lists requests targeting a doctor's appointments.
func (c *Client) DoctorRescheduleRequests(ctx context.Context, doctorID int64) ([]RescheduleRequest, error) {
	data, _, err := c.invoke(ctx, "reschedule.doctor", http.MethodGet, fmt.Sprintf("/reschedule-requests/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[RescheduleRequest]("reschedule.doctor", data)
}

// PendingDoctorRescheduleRequests lists only requests awaiting a response.
func (c *Client) PendingDoctorRescheduleRequests(ctx context.Context, doctorID int64) ([]RescheduleRequest, error) {
	data, _, err := c.invoke(ctx, "reschedule.doctor_pending", http.MethodGet, fmt.Sprintf("/reschedule-requests/doctor/%d/pending", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[RescheduleRequest]("reschedule.doctor_pending", data)
}

// ApproveRescheduleRequest accepts a request; the backend moves the
// appointment and flags it RESCHEDULED.
func (c *Client) ApproveRescheduleRequest(ctx context.Context, requestID int64, doctorResponse string) (*RescheduleRequest, error) {
	q := url.Values{}
	if doctorResponse != "" {
		q.Set("doctorResponse", doctorResponse)
	}
	data, _, err := c.invoke(ctx, "reschedule.approve", http.MethodPatch, fmt.Sprintf("/reschedule-requests/%d/approve", requestID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[RescheduleRequest]("reschedule.approve", data)
}

// RejectRescheduleRequest declines a request with an optional explanation.
func (c *Client) RejectRescheduleRequest(ctx context.Context, requestID int64, doctorResponse string) (*RescheduleRequest, error) {
	q := url.Values{}
	if doctorResponse != "" {
		q.Set("doctorResponse", doctorResponse)
	}
	data, _, err := c.invoke(ctx, "reschedule.reject", http.MethodPatch, fmt.Sprintf("/reschedule-requests/%d/reject", requestID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[RescheduleRequest]("reschedule.reject", data)
}
