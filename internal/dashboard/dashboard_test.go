package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreserve/medreserve-go/internal/reserve"
)

type fakeDoctorAPI struct {
	doctors    []reserve.Doctor
	doctorsErr error
	statsErr   map[int64]error

	mu         sync.Mutex
	inFlight   int32
	maxInUse   int32
	statsCalls []int64
}

func (f *fakeDoctorAPI) ActiveDoctors(context.Context) ([]reserve.Doctor, error) {
	return f.doctors, f.doctorsErr
}

func (f *fakeDoctorAPI) DoctorRatingStats(_ context.Context, doctorID int64) (*reserve.RatingStats, error) {
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		max := atomic.LoadInt32(&f.maxInUse)
		if current <= max || atomic.CompareAndSwapInt32(&f.maxInUse, max, current) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.statsCalls = append(f.statsCalls, doctorID)
	f.mu.Unlock()

	if err := f.statsErr[doctorID]; err != nil {
		return nil, err
	}
	return &reserve.RatingStats{AverageRating: float64(doctorID), TotalRatings: doctorID}, nil
}

func someDoctors(n int) []reserve.Doctor {
	doctors := make([]reserve.Doctor, n)
	for i := range doctors {
		doctors[i] = reserve.Doctor{ID: int64(i + 1), FullName: "Dr. Example"}
	}
	return doctors
}

func TestDoctorListerEnrichesEveryDoctor(t *testing.T) {
	api := &fakeDoctorAPI{doctors: someDoctors(6)}
	lister := NewDoctorLister(api, nil, 2)

	list, err := lister.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 6)
	for i, view := range list {
		assert.Equal(t, float64(i+1), view.AverageRating)
	}
	assert.Len(t, api.statsCalls, 6)
	assert.LessOrEqual(t, api.maxInUse, int32(2), "concurrency bound exceeded")
}

func TestDoctorListerStatsFailureDegrades(t *testing.T) {
	api := &fakeDoctorAPI{
		doctors:  someDoctors(3),
		statsErr: map[int64]error{2: assert.AnError},
	}
	lister := NewDoctorLister(api, nil, 0)

	list, err := lister.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.NotZero(t, list[0].AverageRating)
	assert.Zero(t, list[1].AverageRating)
	assert.Zero(t, list[1].TotalRatings)
	assert.NotZero(t, list[2].AverageRating)
}

func TestDoctorListerListFailure(t *testing.T) {
	api := &fakeDoctorAPI{doctorsErr: assert.AnError}
	_, err := NewDoctorLister(api, nil, 0).List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

type fakePatientAPI struct {
	appts       []reserve.Appointment
	apptsErr    error
	next        *reserve.Appointment
	nextErr     error
	history     []reserve.MedicalRecord
	historyErr  error
	unread      int64
	unreadErr   error
}

func (f *fakePatientAPI) PatientAppointments(context.Context, int64) ([]reserve.Appointment, error) {
	return f.appts, f.apptsErr
}

func (f *fakePatientAPI) NextPatientAppointment(context.Context, int64) (*reserve.Appointment, error) {
	return f.next, f.nextErr
}

func (f *fakePatientAPI) PatientMedicalHistory(context.Context, int64) ([]reserve.MedicalRecord, error) {
	return f.history, f.historyErr
}

func (f *fakePatientAPI) UnreadNotificationCount(context.Context, int64) (int64, error) {
	return f.unread, f.unreadErr
}

func TestPatientLoaderLoadsAllSections(t *testing.T) {
	future := reserve.Time{Time: time.Now().Add(24 * time.Hour)}
	api := &fakePatientAPI{
		appts: []reserve.Appointment{
			{ID: 1, AppointmentTime: future, Status: reserve.AppointmentConfirmed},
			{ID: 2, Status: reserve.AppointmentCompleted},
		},
		next:    &reserve.Appointment{ID: 1, AppointmentTime: future, Status: reserve.AppointmentConfirmed},
		history: []reserve.MedicalRecord{{ID: 10, Title: "Blood panel"}},
		unread:  3,
	}

	overview := NewPatientLoader(api, nil).Load(context.Background(), 5, 9)
	assert.Len(t, overview.Appointments, 2)
	assert.Len(t, overview.Upcoming, 1)
	require.NotNil(t, overview.Next)
	assert.Equal(t, int64(1), overview.Next.ID)
	assert.Len(t, overview.History, 1)
	assert.Equal(t, int64(3), overview.UnreadCount)
	assert.Empty(t, overview.PartialFailures)
}

func TestPatientLoaderPartialFailure(t *testing.T) {
	api := &fakePatientAPI{
		appts:      []reserve.Appointment{{ID: 1}},
		historyErr: assert.AnError,
		unread:     2,
	}

	overview := NewPatientLoader(api, nil).Load(context.Background(), 5, 9)
	assert.Len(t, overview.Appointments, 1)
	assert.Empty(t, overview.History)
	assert.Equal(t, int64(2), overview.UnreadCount)
	assert.Equal(t, []string{"medical-history"}, overview.PartialFailures)
}

func TestPatientLoaderNoNextAppointment(t *testing.T) {
	overview := NewPatientLoader(&fakePatientAPI{}, nil).Load(context.Background(), 5, 9)
	assert.Nil(t, overview.Next)
	assert.Empty(t, overview.PartialFailures)
}
