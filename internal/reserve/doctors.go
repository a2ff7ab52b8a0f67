package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ActiveDoctors lists all doctors accepting bookings.
func (c *Client) ActiveDoctors(ctx context.Context) ([]Doctor, error) {
	data, _, err := c.invoke(ctx, "doctors.list", http.MethodGet, "/doctors", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Doctor]("doctors.list", data)
}

// DoctorByID fetches one doctor profile.
func (c *Client) DoctorByID(ctx context.Context, doctorID int64) (*Doctor, error) {
	data, _, err := c.invoke(ctx, "doctors.get", http.MethodGet, fmt.Sprintf("/doctors/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Doctor]("doctors.get", data)
}

// DoctorByUserID resolves the doctor profile attached to a user account.
func (c *Client) DoctorByUserID(ctx context.Context, userID int64) (*Doctor, error) {
	data, _, err := c.invoke(ctx, "doctors.by_user", http.MethodGet, fmt.Sprintf("/doctors/user/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Doctor]("doctors.by_user", data)
}

// SearchDoctors filters doctors by free-text term and/or specialization.
func (c *Client) SearchDoctors(ctx context.Context, term, specialization string) ([]Doctor, error) {
	q := url.Values{}
	if term != "" {
		q.Set("searchTerm", term)
	}
	if specialization != "" {
		q.Set("specialization", specialization)
	}
	data, _, err := c.invoke(ctx, "doctors.search", http.MethodGet, "/doctors/search", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Doctor]("doctors.search", data)
}

// Specializations lists the distinct specializations available.
func (c *Client) Specializations(ctx context.Context) ([]string, error) {
	data, _, err := c.invoke(ctx, "doctors.specializations", http.MethodGet, "/doctors/specializations", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[string]("doctors.specializations", data)
}

// DoctorPatients lists patients who have appointments with a doctor.
func (c *Client) DoctorPatients(ctx context.Context, doctorID int64) ([]Patient, error) {
	data, _, err := c.invoke(ctx, "doctors.patients", http.MethodGet, fmt.Sprintf("/doctors/%d/patients", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Patient]("doctors.patients", data)
}
