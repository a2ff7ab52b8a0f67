package reserve

import (
	"context"
	"fmt"
	"net/http"
)

// UserNotifications lists all notifications for a user.
func (c *Client) UserNotifications(ctx context.Context, userID int64) ([]Notification, error) {
	data, _, err := c.invoke(ctx, "notifications.list", http.MethodGet, fmt.Sprintf("/patient/%d/notifications", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Notification]("notifications.list", data)
}

// UnreadNotifications lists only unread notifications.
func (c *Client) UnreadNotifications(ctx context.Context, userID int64) ([]Notification, error) {
	data, _, err := c.invoke(ctx, "notifications.unread", http.MethodGet, fmt.Sprintf("/patient/%d/notifications/unread", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Notification]("notifications.unread", data)
}

// UnreadNotificationCount returns how many notifications are unread.
func (c *Client) UnreadNotificationCount(ctx context.Context, userID int64) (int64, error) {
	data, _, err := c.invoke(ctx, "notifications.count", http.MethodGet, fmt.Sprintf("/notifications/user/%d/count", userID), nil, nil)
	if err != nil {
		return 0, err
	}
	count, err := decodeJSON[int64]("notifications.count", data)
	if err != nil {
		return 0, err
	}
	return *count, nil
}

// MarkNotificationRead marks a single notification read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	_, _, err := c.invoke(ctx, "notifications.mark_read", http.MethodPatch, fmt.Sprintf("/notifications/%d/read", notificationID), nil, nil)
	return err
}

// MarkAllNotificationsRead marks every notification for a user read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	_, _, err := c.invoke(ctx, "notifications.mark_all_read", http.MethodPatch, fmt.Sprintf("/notifications/user/%d/mark-all-read", userID), nil, nil)
	return err
}
