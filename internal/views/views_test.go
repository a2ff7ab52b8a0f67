package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medreserve/medreserve-go/internal/booking"
	"github.com/medreserve/medreserve-go/internal/reserve"
)

func wire(t time.Time) reserve.Time { return reserve.Time{Time: t} }

func TestNewAppointmentView(t *testing.T) {
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	view := NewAppointmentView(reserve.Appointment{
		ID:              7,
		DoctorName:      "Dr. Reyes",
		AppointmentTime: wire(start),
		EndTime:         wire(start.Add(45 * time.Minute)),
		Status:          reserve.AppointmentConfirmed,
		Notes:           "Checkup | Additional notes: bring referral",
	})
	assert.Equal(t, 45*time.Minute, view.Duration)
	assert.Equal(t, "confirmed", view.StatusLabel)
	assert.Equal(t, booking.VisitNotes{Reason: "Checkup", AdditionalNotes: "bring referral"}, view.Notes)
	assert.True(t, view.Reschedulable)
}

func TestAppointmentViewDefaults(t *testing.T) {
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	view := NewAppointmentView(reserve.Appointment{
		AppointmentTime: wire(start),
		Status:          reserve.AppointmentCompleted,
		Notes:           "Annual physical",
	})
	assert.Equal(t, defaultDuration, view.Duration)
	assert.Equal(t, booking.VisitNotes{Reason: "Annual physical"}, view.Notes)
	assert.False(t, view.Reschedulable)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	appts := []reserve.Appointment{
		{AppointmentTime: wire(now.Add(2 * time.Hour)), Status: reserve.AppointmentConfirmed},
		{AppointmentTime: wire(now.Add(-3 * time.Hour)), Status: reserve.AppointmentPending},
		{AppointmentTime: wire(now.AddDate(0, 0, 2)), Status: reserve.AppointmentPending},
		{AppointmentTime: wire(now.AddDate(0, 0, -7)), Status: reserve.AppointmentCompleted},
		{AppointmentTime: wire(now.Add(time.Hour)), Status: reserve.AppointmentCancelled},
	}
	stats := ComputeStats(appts, now)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
}

func TestFilterUpcomingExcludesTerminal(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	appts := []reserve.Appointment{
		{ID: 1, AppointmentTime: wire(now.Add(time.Hour)), Status: reserve.AppointmentConfirmed},
		{ID: 2, AppointmentTime: wire(now.Add(time.Hour)), Status: reserve.AppointmentCancelled},
		{ID: 3, AppointmentTime: wire(now.Add(-time.Hour)), Status: reserve.AppointmentConfirmed},
	}
	got := FilterUpcoming(appts, now)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestCategoryForRecordType(t *testing.T) {
	cases := []struct {
		recordType string
		want       RecordCategory
	}{
		{"CONSULTATION", CategoryConsultation},
		{"lab_test", CategoryTest},
		{"IMAGING", CategoryTest},
		{"SURGERY", CategoryProcedure},
		{"  checkup  ", CategoryCheckup},
		{"EMERGENCY", CategoryEmergency},
		{"FOLLOW_UP", CategoryFollowUp},
		{"PRESCRIPTION", CategoryPrescription},
		{"SOMETHING_NEW", CategoryConsultation},
		{"", CategoryConsultation},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryForRecordType(tc.recordType), "type=%q", tc.recordType)
	}
}

func TestNewDoctorView(t *testing.T) {
	doctor := reserve.Doctor{ID: 3, FullName: "Dr. Reyes", Specialization: "Cardiology"}

	withStats := NewDoctorView(doctor, &reserve.RatingStats{AverageRating: 4.5, TotalRatings: 12, UserHasRated: true})
	assert.Equal(t, 4.5, withStats.AverageRating)
	assert.Equal(t, int64(12), withStats.TotalRatings)
	assert.True(t, withStats.UserHasRated)

	withoutStats := NewDoctorView(doctor, nil)
	assert.Zero(t, withoutStats.AverageRating)
	assert.Zero(t, withoutStats.TotalRatings)
	assert.Equal(t, "Dr. Reyes", withoutStats.FullName)
}
