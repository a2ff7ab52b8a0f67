package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/medreserve/medreserve-go/internal/reserve"
	"github.com/medreserve/medreserve-go/internal/views"
	"github.com/medreserve/medreserve-go/pkg/logging"
)

type patientAPI interface {
	PatientAppointments(ctx context.Context, patientID int64) ([]reserve.Appointment, error)
	NextPatientAppointment(ctx context.Context, patientID int64) (*reserve.Appointment, error)
	PatientMedicalHistory(ctx context.Context, patientID int64) ([]reserve.MedicalRecord, error)
	UnreadNotificationCount(ctx context.Context, userID int64) (int64, error)
}

// PatientOverview is everything the patient landing page renders.
type PatientOverview struct {
	Appointments    []views.AppointmentView
	Upcoming        []views.AppointmentView
	Next            *views.AppointmentView
	History         []reserve.MedicalRecord
	UnreadCount     int64
	PartialFailures []string
}

// PatientLoader fetches the patient overview's sections in parallel.
type PatientLoader struct {
	api    patientAPI
	logger *logging.Logger
}

func NewPatientLoader(api patientAPI, logger *logging.Logger) *PatientLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &PatientLoader{api: api, logger: logger}
}

// Load fetches appointments, the next appointment, medical history, and the
// unread notification count concurrently. A section that fails comes back
// empty and is named in PartialFailures; the page still loads.
func (l *PatientLoader) Load(ctx context.Context, patientID, userID int64) *PatientOverview {
	overview := &PatientOverview{}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	fail := func(section string, err error) {
		l.logger.Warn("overview section failed", "section", section, "patient_id", patientID, "error", err)
		mu.Lock()
		overview.PartialFailures = append(overview.PartialFailures, section)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		appts, err := l.api.PatientAppointments(ctx, patientID)
		if err != nil {
			fail("appointments", err)
			return
		}
		mu.Lock()
		overview.Appointments = views.AppointmentViews(appts)
		overview.Upcoming = views.AppointmentViews(views.FilterUpcoming(appts, time.Now()))
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		next, err := l.api.NextPatientAppointment(ctx, patientID)
		if err != nil {
			fail("next-appointment", err)
			return
		}
		if next == nil {
			return
		}
		view := views.NewAppointmentView(*next)
		mu.Lock()
		overview.Next = &view
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		history, err := l.api.PatientMedicalHistory(ctx, patientID)
		if err != nil {
			fail("medical-history", err)
			return
		}
		mu.Lock()
		overview.History = history
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		count, err := l.api.UnreadNotificationCount(ctx, userID)
		if err != nil {
			fail("notifications", err)
			return
		}
		mu.Lock()
		overview.UnreadCount = count
		mu.Unlock()
	}()
	wg.Wait()
	return overview
}
