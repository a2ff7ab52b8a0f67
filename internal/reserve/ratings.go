package reserve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateRating submits a new rating for a doctor.
func (c *Client) CreateRating(ctx context.Context, req RatingRequest) (*Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("reserve: rating must be between 1 and 5")
	}
	data, _, err := c.invoke(ctx, "ratings.create", http.MethodPost, "/ratings", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Rating]("ratings.create", data)
}

// UpdateRating replaces an existing rating.
func (c *Client) UpdateRating(ctx context.Context, ratingID int64, req RatingRequest) (*Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("reserve: rating must be between 1 and 5")
	}
	data, _, err := c.invoke(ctx, "ratings.update", http.MethodPut, fmt.Sprintf("/ratings/%d", ratingID), nil, req)
	if err != nil {
		return nil, err
	}
	return decodeJSON[Rating]("ratings.update", data)
}

// DeleteRating removes the caller's rating.
func (c *Client) DeleteRating(ctx context.Context, ratingID int64) error {
	_, _, err := c.invoke(ctx, "ratings.delete", http.MethodDelete, fmt.Sprintf("/ratings/%d", ratingID), nil, nil)
	return err
}

// DoctorRatings lists all ratings for a doctor.
func (c *Client) DoctorRatings(ctx context.Context, doctorID int64) ([]Rating, error) {
	data, _, err := c.invoke(ctx, "ratings.doctor", http.MethodGet, fmt.Sprintf("/ratings/doctor/%d", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Rating]("ratings.doctor", data)
}

// DoctorRatingStats returns the server-computed aggregate for a doctor.
func (c *Client) DoctorRatingStats(ctx context.Context, doctorID int64) (*RatingStats, error) {
	data, _, err := c.invoke(ctx, "ratings.stats", http.MethodGet, fmt.Sprintf("/ratings/doctor/%d/stats", doctorID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[RatingStats]("ratings.stats", data)
}

// MyRatingForDoctor returns the caller's rating for a doctor, or nil when the
// backend answers 404 (the caller has not rated this doctor yet).
func (c *Client) MyRatingForDoctor(ctx context.Context, doctorID int64) (*Rating, error) {
	data, _, err := c.invoke(ctx, "ratings.my_rating", http.MethodGet, fmt.Sprintf("/ratings/doctor/%d/my-rating", doctorID), nil, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeJSON[Rating]("ratings.my_rating", data)
}

// MyRatings lists every rating the caller has submitted.
func (c *Client) MyRatings(ctx context.Context) ([]Rating, error) {
	data, _, err := c.invoke(ctx, "ratings.mine", http.MethodGet, "/ratings/my-ratings", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Rating]("ratings.mine", data)
}

// AdminRatings pages through every rating on the platform.
func (c *Client) AdminRatings(ctx context.Context, page, size int) (*RatingsPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	data, _, err := c.invoke(ctx, "admin.ratings", http.MethodGet, "/admin/ratings", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[RatingsPage]("admin.ratings", data)
}

// AdminDeleteRating removes any rating (comment moderation).
func (c *Client) AdminDeleteRating(ctx context.Context, ratingID int64) error {
	_, _, err := c.invoke(ctx, "admin.delete_rating", http.MethodDelete, fmt.Sprintf("/admin/ratings/%d", ratingID), nil, nil)
	return err
}
