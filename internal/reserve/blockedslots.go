package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CreateBlockedSlot marks an interval of a doctor's schedule as blocked.
func (c *Client) CreateBlockedSlot(ctx context.Context, slot BlockedSlot) (*BlockedSlot, error) {
	data, _, err := c.invoke(ctx, "blocked_slots.create", http.MethodPost, "/blocked-slots", nil, slot)
	if err != nil {
		return nil, err
	}
	return decodeJSON[BlockedSlot]("blocked_slots.create", data)
}

// DoctorBlockedSlots lists all blocked intervals for a doctor.
func (c *Client) DoctorBlockedSlots(ctx context.Context, doctorID int64) ([]BlockedSlot, error) {
	data, _, err := c.invoke(ctx, "blocked_slots.doctor", http.MethodGet, fmt.Sprintf("/blocked-slots/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[BlockedSlot]("blocked_slots.doctor", data)
}

// DoctorBlockedSlotsInRange lists blocked intervals overlapping a window.
func (c *Client) DoctorBlockedSlotsInRange(ctx context.Context, doctorID int64, start, end time.Time) ([]BlockedSlot, error) {
	q := url.Values{}
	q.Set("startTime", WireTime(start))
	q.Set("endTime", WireTime(end))
	data, _, err := c.invoke(ctx, "blocked_slots.range", http.MethodGet, fmt.Sprintf("/blocked-slots/doctor/%d/range", doctorID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[BlockedSlot]("blocked_slots.range", data)
}

// UpdateBlockedSlot replaces a blocked interval.
func (c *Client) UpdateBlockedSlot(ctx context.Context, id int64, slot BlockedSlot) (*BlockedSlot, error) {
	data, _, err := c.invoke(ctx, "blocked_slots.update", http.MethodPut, fmt.Sprintf("/blocked-slots/%d", id), nil, slot)
	if err != nil {
		return nil, err
	}
	return decodeJSON[BlockedSlot]("blocked_slots.update", data)
}

// DeleteBlockedSlot removes a blocked interval.
func (c *Client) DeleteBlockedSlot(ctx context.Context, id int64) error {
	_, _, err := c.invoke(ctx, "blocked_slots.delete", http.MethodDelete, fmt.Sprintf("/blocked-slots/%d", id), nil, nil)
	return err
}

// IsSlotBlocked asks whether any blocked interval overlaps the window.
func (c *Client) IsSlotBlocked(ctx context.Context, doctorID int64, start, end time.Time) (bool, error) {
	q := url.Values{}
	q.Set("startTime", WireTime(start))
	q.Set("endTime", WireTime(end))
	data, _, err := c.invoke(ctx, "blocked_slots.check", http.MethodGet, fmt.Sprintf("/blocked-slots/doctor/%d/check-blocked", doctorID), q, nil)
	if err != nil {
		return false, err
	}
	blocked, err := decodeJSON[bool]("blocked_slots.check", data)
	if err != nil {
		return false, err
	}
	return *blocked, nil
}
