package reserve

import (
	"context"
	"fmt"
	"net/http"
)

// PatientMedicalHistory lists a patient's medical records.
func (c *Client) PatientMedicalHistory(ctx context.Context, patientID int64) ([]MedicalRecord, error) {
	data, _, err := c.invoke(ctx, "medical_history.patient", http.MethodGet, fmt.Sprintf("/medical-history/patient/%d", patientID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[MedicalRecord]("medical_history.patient", data)
}

// MedicalRecordByID fetches one record.
func (c *Client) MedicalRecordByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	data, _, err := c.invoke(ctx, "medical_history.get", http.MethodGet, fmt.Sprintf("/medical-history/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[MedicalRecord]("medical_history.get", data)
}

// CreateMedicalRecord adds a record for a patient (doctor action).
func (c *Client) CreateMedicalRecord(ctx context.Context, record MedicalRecord) (*MedicalRecord, error) {
	data, _, err := c.invoke(ctx, "medical_history.create", http.MethodPost, "/medical-history", nil, record)
	if err != nil {
		return nil, err
	}
	return decodeJSON[MedicalRecord]("medical_history.create", data)
}

// UpdateMedicalRecord replaces an existing record.
func (c *Client) UpdateMedicalRecord(ctx context.Context, id int64, record MedicalRecord) (*MedicalRecord, error) {
	data, _, err := c.invoke(ctx, "medical_history.update", http.MethodPut, fmt.Sprintf("/medical-history/%d", id), nil, record)
	if err != nil {
		return nil, err
	}
	return decodeJSON[MedicalRecord]("medical_history.update", data)
}

// DeleteMedicalRecord removes a record.
func (c *Client) DeleteMedicalRecord(ctx context.Context, id int64) error {
	_, _, err := c.invoke(ctx, "medical_history.delete", http.MethodDelete, fmt.Sprintf("/medical-history/%d", id), nil, nil)
	return err
}

// DoctorMedicalRecords lists records authored by a doctor.
func (c *Client) DoctorMedicalRecords(ctx context.Context, doctorID int64) ([]MedicalRecord, error) {
	data, _, err := c.invoke(ctx, "medical_history.doctor", http.MethodGet, fmt.Sprintf("/medical-history/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[MedicalRecord]("medical_history.doctor", data)
}
