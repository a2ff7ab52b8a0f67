package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DoctorSchedule lists a doctor's raw schedule slots without booking status.
func (c *Client) DoctorSchedule(ctx context.Context, doctorID int64) ([]ScheduleSlot, error) {
	data, _, err := c.invoke(ctx, "schedules.doctor", http.MethodGet, fmt.Sprintf("/schedules/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[ScheduleSlot]("schedules.doctor", data)
}

// ScheduleWithStatus lists a doctor's slots over a range with each slot
// tagged FREE, BOOKED, BLOCKED, or UNAVAILABLE. This is the query every
// booking surface derives its offer list from.
func (c *Client) ScheduleWithStatus(ctx context.Context, doctorID int64, start, end time.Time) ([]ScheduleSlot, error) {
	q := url.Values{}
	q.Set("startDate", WireTime(start))
	q.Set("endDate", WireTime(end))
	data, _, err := c.invoke(ctx, "schedules.with_status", http.MethodGet, fmt.Sprintf("/schedules/doctor/%d/with-status", doctorID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[ScheduleSlot]("schedules.with_status", data)
}

// AvailableSlots lists only the slots the backend considers free in a range.
func (c *Client) AvailableSlots(ctx context.Context, doctorID int64, start, end time.Time) ([]ScheduleSlot, error) {
	q := url.Values{}
	q.Set("startDate", WireTime(start))
	q.Set("endDate", WireTime(end))
	data, _, err := c.invoke(ctx, "schedules.available", http.MethodGet, fmt.Sprintf("/schedules/available/%d", doctorID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[ScheduleSlot]("schedules.available", data)
}

// CreateSchedule adds a schedule slot for a doctor.
func (c *Client) CreateSchedule(ctx context.Context, slot ScheduleSlot) (*ScheduleSlot, error) {
	data, _, err := c.invoke(ctx, "schedules.create", http.MethodPost, "/schedules", nil, slot)
	if err != nil {
		return nil, err
	}
	return decodeJSON[ScheduleSlot]("schedules.create", data)
}

// UpdateSchedule replaces an existing schedule slot.
func (c *Client) UpdateSchedule(ctx context.Context, id int64, slot ScheduleSlot) (*ScheduleSlot, error) {
	data, _, err := c.invoke(ctx, "schedules.update", http.MethodPut, fmt.Sprintf("/schedules/%d", id), nil, slot)
	if err != nil {
		return nil, err
	}
	return decodeJSON[ScheduleSlot]("schedules.update", data)
}

// DeleteSchedule removes a schedule slot.
func (c *Client) DeleteSchedule(ctx context.Context, id int64) error {
	_, _, err := c.invoke(ctx, "schedules.delete", http.MethodDelete, fmt.Sprintf("/schedules/%d", id), nil, nil)
	return err
}

// MarkSlotUnavailable flags a slot so patients cannot book it.
func (c *Client) MarkSlotUnavailable(ctx context.Context, id int64) error {
	_, _, err := c.invoke(ctx, "schedules.mark_unavailable", http.MethodPatch, fmt.Sprintf("/schedules/%d/unavailable", id), nil, nil)
	return err
}

// MarkSlotAvailable re-opens a slot for booking.
func (c *Client) MarkSlotAvailable(ctx context.Context, id int64) error {
	_, _, err := c.invoke(ctx, "schedules.mark_available", http.MethodPatch, fmt.Sprintf("/schedules/%d/available", id), nil, nil)
	return err
}

// GenerateScheduleFromAvailability asks the backend to materialize slots from
// the doctor's weekly availability template over a date range.
func (c *Client) GenerateScheduleFromAvailability(ctx context.Context, doctorID int64, start, end time.Time) error {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))
	_, _, err := c.invoke(ctx, "schedules.generate", http.MethodPost, fmt.Sprintf("/schedules/doctor/%d/generate-from-availability", doctorID), q, nil)
	return err
}
