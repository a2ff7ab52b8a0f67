package reserve

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentSendsNotesVerbatim(t *testing.T) {
	var body map[string]any
	client := newTestBackend(t, func(r chi.Router) {
		r.Post("/appointments", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			writeJSON(t, w, http.StatusCreated, Appointment{
				ID: 7, DoctorID: 3, PatientID: 5, Status: AppointmentPending, Notes: "Checkup",
			})
		})
	})

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	appt, err := client.CreateAppointment(context.Background(), CreateAppointmentRequest{
		DoctorID:        3,
		PatientID:       5,
		AppointmentTime: Time{start},
		EndTime:         Time{start.Add(30 * time.Minute)},
		Notes:           "Checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, "Checkup", body["notes"])
	assert.Equal(t, "2026-09-14T10:00:00", body["appointmentTime"])
	assert.Equal(t, int64(7), appt.ID)
	assert.Equal(t, AppointmentPending, appt.Status)
}

func TestCreateAppointmentValidatesInputs(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	_, err = client.CreateAppointment(context.Background(), CreateAppointmentRequest{PatientID: 5})
	assert.Error(t, err)

	_, err = client.CreateAppointment(context.Background(), CreateAppointmentRequest{DoctorID: 3, PatientID: 5})
	assert.Error(t, err)
}

func TestNextPatientAppointmentNoContent(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/appointments/patient/{id}/next", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	appt, err := client.NextPatientAppointment(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, appt)
}

func TestNextPatientAppointmentFound(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/appointments/patient/{id}/next", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, Appointment{ID: 11, Status: AppointmentConfirmed})
		})
	})

	appt, err := client.NextPatientAppointment(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, appt)
	assert.Equal(t, int64(11), appt.ID)
}

func TestUpdateAppointmentStatusQuery(t *testing.T) {
	var query map[string][]string
	client := newTestBackend(t, func(r chi.Router) {
		r.Patch("/appointments/{id}/status", func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.Query()
			writeJSON(t, w, http.StatusOK, Appointment{ID: 9, Status: AppointmentCancelled, CancellationReason: "patient request"})
		})
	})

	appt, err := client.UpdateAppointmentStatus(context.Background(), 9, AppointmentCancelled, "patient request")
	require.NoError(t, err)
	assert.Equal(t, []string{"CANCELLED"}, query["status"])
	assert.Equal(t, []string{"patient request"}, query["reason"])
	assert.Equal(t, AppointmentCancelled, appt.Status)
}

func TestCancelAppointmentFailure(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Delete("/appointments/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusConflict, map[string]string{"message": "appointment already completed"})
		})
	})

	err := client.CancelAppointment(context.Background(), 4, "")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestRescheduleAppointmentQuery(t *testing.T) {
	var query map[string][]string
	client := newTestBackend(t, func(r chi.Router) {
		r.Patch("/appointments/{id}/reschedule", func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.Query()
			writeJSON(t, w, http.StatusOK, Appointment{ID: 2, Status: AppointmentRescheduled})
		})
	})

	start := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	appt, err := client.RescheduleAppointment(context.Background(), 2, start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-01T09:30:00"}, query["newDateTime"])
	assert.Equal(t, []string{"2026-10-01T10:30:00"}, query["newEndTime"])
	assert.Equal(t, AppointmentRescheduled, appt.Status)
}

func TestCheckSlotAvailability(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/appointments/availability/check", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, false)
		})
	})

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	ok, err := client.CheckSlotAvailability(context.Background(), 3, start, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWireTimeRoundTrip(t *testing.T) {
	var parsed Time
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-14T10:00:00"`), &parsed))
	out, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-14T10:00:00"`, string(out))
}

func TestWireTimeTolerantParsing(t *testing.T) {
	for _, raw := range []string{
		`"2026-09-14T10:00:00.123"`,
		`"2026-09-14T10:00:00Z"`,
		`"2026-09-14"`,
	} {
		var parsed Time
		require.NoError(t, json.Unmarshal([]byte(raw), &parsed), raw)
		assert.False(t, parsed.IsZero(), raw)
	}

	var bad Time
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &bad))
}
