package reserve

import (
	"fmt"
	"strings"
	"time"
)

// wireTimeLayout is the zone-less ISO-8601 format the backend uses for every
// date-time field and query parameter (Java LocalDateTime).
const wireTimeLayout = "2006-01-02T15:04:05"

// Time wraps time.Time with the backend's zone-less wire format. Incoming
// values may carry fractional seconds or a UTC marker; outgoing values never
// do.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(wireTimeLayout) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{
		wireTimeLayout,
		"2006-01-02T15:04:05.999999999",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02",
	} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("reserve: unparseable time %q", raw)
}

// WireTime formats t for query parameters the same way body fields are
// encoded.
func WireTime(t time.Time) string {
	return t.Format(wireTimeLayout)
}

// AppointmentStatus is the closed set of server-defined appointment states.
// The client reflects these verbatim and never enforces transition legality.
type AppointmentStatus string

const (
	AppointmentPending     AppointmentStatus = "PENDING"
	AppointmentConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentScheduled   AppointmentStatus = "SCHEDULED"
	AppointmentRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentCompleted   AppointmentStatus = "COMPLETED"
	AppointmentCancelled   AppointmentStatus = "CANCELLED"
	AppointmentNoShow      AppointmentStatus = "NO_SHOW"
)

// Display returns the lowercased form used by every view surface.
func (s AppointmentStatus) Display() string {
	return strings.ToLower(string(s))
}

// Terminal reports whether no further transitions are expected.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// SlotStatus tags a schedule slot as produced by the backend's with-status
// schedule query.
type SlotStatus string

const (
	SlotFree        SlotStatus = "FREE"
	SlotBooked      SlotStatus = "BOOKED"
	SlotBlocked     SlotStatus = "BLOCKED"
	SlotUnavailable SlotStatus = "UNAVAILABLE"
)

// Appointment is an appointment as returned by the backend.
type Appointment struct {
	ID                   int64             `json:"id"`
	PatientID            int64             `json:"patientId"`
	PatientName          string            `json:"patientName,omitempty"`
	PatientEmail         string            `json:"patientEmail,omitempty"`
	PatientPhone         string            `json:"patientPhone,omitempty"`
	PatientAge           *int              `json:"patientAge,omitempty"`
	DoctorID             int64             `json:"doctorId"`
	DoctorName           string            `json:"doctorName,omitempty"`
	DoctorSpecialization string            `json:"doctorSpecialization,omitempty"`
	DoctorLocation       string            `json:"doctorLocation,omitempty"`
	ServiceID            *int64            `json:"serviceId,omitempty"`
	ServiceName          string            `json:"serviceName,omitempty"`
	AppointmentTime      Time              `json:"appointmentTime"`
	EndTime              Time              `json:"endTime"`
	Status               AppointmentStatus `json:"status"`
	Notes                string            `json:"notes,omitempty"`
	CancellationReason   string            `json:"cancellationReason,omitempty"`
	ConsultationFee      *int              `json:"consultationFee,omitempty"`
	CreatedAt            Time              `json:"createdAt,omitzero"`
}

// CreateAppointmentRequest is the payload for booking an appointment. Notes
// carries the legacy combined reason/additional-notes string; see the booking
// package for the codec.
type CreateAppointmentRequest struct {
	DoctorID        int64  `json:"doctorId"`
	PatientID       int64  `json:"patientId"`
	AppointmentTime Time   `json:"appointmentTime"`
	EndTime         Time   `json:"endTime"`
	ServiceID       *int64 `json:"serviceId,omitempty"`
	Notes           string `json:"notes"`
}

// ScheduleSlot is one bookable interval of a doctor's schedule. Status is
// only populated by the with-status query; the plain schedule endpoints set
// Available alone.
type ScheduleSlot struct {
	ID            int64      `json:"id"`
	DoctorID      int64      `json:"doctorId"`
	DoctorName    string     `json:"doctorName,omitempty"`
	StartTime     Time       `json:"startTime"`
	EndTime       Time       `json:"endTime"`
	Available     bool       `json:"available"`
	Status        SlotStatus `json:"status,omitempty"`
	BlockedReason string     `json:"blockedReason,omitempty"`
	AppointmentID *int64     `json:"appointmentId,omitempty"`
	PatientName   string     `json:"patientName,omitempty"`
	PatientID     *int64     `json:"patientId,omitempty"`
}

// Doctor is a doctor profile as listed to patients.
type Doctor struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"userId,omitempty"`
	FullName       string   `json:"fullName"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio,omitempty"`
	Education      string   `json:"education,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Location       string   `json:"location,omitempty"`
	Price          *float64 `json:"price,omitempty"`
}

// Rating is one patient's rating of a doctor. The backend enforces at most
// one rating per (user, doctor) pair.
type Rating struct {
	ID         int64  `json:"id"`
	DoctorID   int64  `json:"doctorId"`
	DoctorName string `json:"doctorName,omitempty"`
	UserID     int64  `json:"userId"`
	UserName   string `json:"userName,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  Time   `json:"createdAt,omitzero"`
	UpdatedAt  Time   `json:"updatedAt,omitzero"`
}

// RatingRequest is the payload for creating or updating a rating.
type RatingRequest struct {
	DoctorID int64  `json:"doctorId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

// RatingStats is the server-computed aggregate for one doctor.
type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
	UserHasRated  bool    `json:"userHasRated"`
	UserRating    *Rating `json:"userRating,omitempty"`
}

// MedicalRecord is a medical-history entry.
type MedicalRecord struct {
	ID                   int64  `json:"id"`
	PatientID            int64  `json:"patientId"`
	PatientName          string `json:"patientName,omitempty"`
	DoctorID             int64  `json:"doctorId"`
	DoctorName           string `json:"doctorName,omitempty"`
	DoctorSpecialization string `json:"doctorSpecialization,omitempty"`
	AppointmentID        *int64 `json:"appointmentId,omitempty"`
	RecordType           string `json:"recordType,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	Diagnosis            string `json:"diagnosis,omitempty"`
	Treatment            string `json:"treatment,omitempty"`
	Medications          string `json:"medications,omitempty"`
	AttachmentURL        string `json:"attachmentUrl,omitempty"`
	RecordDate           Time   `json:"recordDate,omitzero"`
	CreatedAt            Time   `json:"createdAt,omitzero"`
}

// User is an account as seen by the admin surface.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	IsActive    *bool  `json:"isActive,omitempty"`
	LastLogin   Time   `json:"lastLogin,omitzero"`
	CreatedAt   Time   `json:"createdAt,omitzero"`
}

// Patient is the doctor-facing patient summary with medical profile fields.
type Patient struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Age             *int   `json:"age,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Address         string `json:"address,omitempty"`
	BloodType       string `json:"bloodType,omitempty"`
	Allergies       string `json:"allergies,omitempty"`
	ChronicIllness  string `json:"chronicConditions,omitempty"`
	Medications     string `json:"currentMedications,omitempty"`
	Status          string `json:"status,omitempty"`
	LastVisit       Time   `json:"lastVisit,omitzero"`
	NextAppointment Time   `json:"nextAppointment,omitzero"`
	VisitCount      int    `json:"visitCount,omitempty"`
}

// DoctorRequest is a pending application to become a doctor.
type DoctorRequest struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	UserName        string `json:"userName,omitempty"`
	UserEmail       string `json:"userEmail,omitempty"`
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio,omitempty"`
	LicenseNumber   string `json:"licenseNumber"`
	Education       string `json:"education,omitempty"`
	Experience      string `json:"experience,omitempty"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	ReviewedByName  string `json:"reviewedByName,omitempty"`
	ReviewedAt      Time   `json:"reviewedAt,omitzero"`
	CreatedAt       Time   `json:"createdAt,omitzero"`
}

// Statistics is the admin dashboard aggregate.
type Statistics struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalPatients     int64 `json:"totalPatients"`
	TotalDoctors      int64 `json:"totalDoctors"`
	TotalAppointments int64 `json:"totalAppointments"`
}

// Notification is one user notification.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"isRead"`
	CreatedAt Time   `json:"createdAt,omitzero"`
}

// BlockedSlot is a doctor-declared unavailable interval.
type BlockedSlot struct {
	ID         int64  `json:"id"`
	DoctorID   int64  `json:"doctorId"`
	DoctorName string `json:"doctorName,omitempty"`
	StartTime  Time   `json:"startTime"`
	EndTime    Time   `json:"endTime"`
	Reason     string `json:"reason,omitempty"`
}

// RescheduleRequest is a patient's pending request to move an appointment.
type RescheduleRequest struct {
	ID                int64  `json:"id"`
	AppointmentID     int64  `json:"appointmentId"`
	PatientName       string `json:"patientName,omitempty"`
	DoctorName        string `json:"doctorName,omitempty"`
	ServiceName       string `json:"serviceName,omitempty"`
	OriginalDateTime  Time   `json:"originalDateTime"`
	RequestedDateTime Time   `json:"requestedDateTime"`
	RequestedEndTime  Time   `json:"requestedEndTime"`
	Status            string `json:"status"`
	PatientReason     string `json:"patientReason,omitempty"`
	DoctorResponse    string `json:"doctorResponse,omitempty"`
	CreatedAt         Time   `json:"createdAt,omitzero"`
	RespondedAt       Time   `json:"respondedAt,omitzero"`
}

// RatingsPage is one page of the admin ratings listing.
type RatingsPage struct {
	Content       []Rating `json:"content"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	Number        int      `json:"number"`
	Size          int      `json:"size"`
}

// AuthResponse is the login/register response.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	UserID   int64  `json:"userId"`
}
