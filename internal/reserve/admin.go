package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AdminUsers lists every account.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	data, _, err := c.invoke(ctx, "admin.users", http.MethodGet, "/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User]("admin.users", data)
}

// AdminUserByID fetches one account.
func (c *Client) AdminUserByID(ctx context.Context, userID int64) (*User, error) {
	data, _, err := c.invoke(ctx, "admin.user", http.MethodGet, fmt.Sprintf("/admin/users/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[User]("admin.user", data)
}

// AdminUpdateUserRole changes an account's role.
func (c *Client) AdminUpdateUserRole(ctx context.Context, userID int64, roleName string) (*User, error) {
	q := url.Values{}
	q.Set("roleName", roleName)
	data, _, err := c.invoke(ctx, "admin.update_role", http.MethodPatch, fmt.Sprintf("/admin/users/%d/role", userID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[User]("admin.update_role", data)
}

// AdminDeactivateUser disables an account.
func (c *Client) AdminDeactivateUser(ctx context.Context, userID int64) error {
	_, _, err := c.invoke(ctx, "admin.deactivate_user", http.MethodPatch, fmt.Sprintf("/admin/users/%d/deactivate", userID), nil, nil)
	return err
}

// AdminActivateUser re-enables an account.
func (c *Client) AdminActivateUser(ctx context.Context, userID int64) error {
	_, _, err := c.invoke(ctx, "admin.activate_user", http.MethodPatch, fmt.Sprintf("/admin/users/%d/activate", userID), nil, nil)
	return err
}

// AdminDeleteUser permanently removes an account.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	_, _, err := c.invoke(ctx, "admin.delete_user", http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil, nil)
	return err
}

// AdminDoctorRequests lists every doctor application.
func (c *Client) AdminDoctorRequests(ctx context.Context) ([]DoctorRequest, error) {
	data, _, err := c.invoke(ctx, "admin.doctor_requests", http.MethodGet, "/admin/doctor-requests", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[DoctorRequest]("admin.doctor_requests", data)
}

// AdminPendingDoctorRequests lists applications awaiting review.
func (c *Client) AdminPendingDoctorRequests(ctx context.Context) ([]DoctorRequest, error) {
	data, _, err := c.invoke(ctx, "admin.pending_doctor_requests", http.MethodGet, "/admin/doctor-requests/pending", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[DoctorRequest]("admin.pending_doctor_requests", data)
}

// AdminApproveDoctorRequest approves an application.
func (c *Client) AdminApproveDoctorRequest(ctx context.Context, requestID, adminID int64) (*DoctorRequest, error) {
	q := url.Values{}
	q.Set("adminId", strconv.FormatInt(adminID, 10))
	data, _, err := c.invoke(ctx, "admin.approve_doctor_request", http.MethodPatch, fmt.Sprintf("/admin/doctor-requests/%d/approve", requestID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[DoctorRequest]("admin.approve_doctor_request", data)
}

// AdminRejectDoctorRequest rejects an application with a reason.
func (c *Client) AdminRejectDoctorRequest(ctx context.Context, requestID, adminID int64, reason string) (*DoctorRequest, error) {
	q := url.Values{}
	q.Set("adminId", strconv.FormatInt(adminID, 10))
	q.Set("reason", reason)
	data, _, err := c.invoke(ctx, "admin.reject_doctor_request", http.MethodPatch, fmt.Sprintf("/admin/doctor-requests/%d/reject", requestID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[DoctorRequest]("admin.reject_doctor_request", data)
}

// AdminStatistics returns the platform totals for the admin dashboard.
func (c *Client) AdminStatistics(ctx context.Context) (*Statistics, error) {
	data, _, err := c.invoke(ctx, "admin.statistics", http.MethodGet, "/admin/statistics", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Statistics]("admin.statistics", data)
}

// AdminAppointments lists every appointment on the platform.
func (c *Client) AdminAppointments(ctx context.Context) ([]Appointment, error) {
	data, _, err := c.invoke(ctx, "admin.appointments", http.MethodGet, "/admin/appointments", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Appointment]("admin.appointments", data)
}
