// Package rating decides between creating and updating a doctor rating based
// on whether the caller has rated the doctor before.
package rating

import (
	"context"
	"fmt"

	"github.com/medreserve/medreserve-go/internal/reserve"
)

type ratingAPI interface {
	MyRatingForDoctor(ctx context.Context, doctorID int64) (*reserve.Rating, error)
	CreateRating(ctx context.Context, req reserve.RatingRequest) (*reserve.Rating, error)
	UpdateRating(ctx context.Context, ratingID int64, req reserve.RatingRequest) (*reserve.Rating, error)
}

// Submitter routes a rating submission to create or update.
type Submitter struct {
	api ratingAPI
}

func NewSubmitter(api ratingAPI) *Submitter {
	return &Submitter{api: api}
}

// Submit records the caller's rating for a doctor. With no prior rating it
// creates one; with an existing rating it updates it in place. The server's
// returned rating is the result in both paths.
func (s *Submitter) Submit(ctx context.Context, doctorID int64, value int, comment string) (*reserve.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("rating: value must be between 1 and 5")
	}
	existing, err := s.api.MyRatingForDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("rating: look up existing rating: %w", err)
	}
	req := reserve.RatingRequest{DoctorID: doctorID, Rating: value, Comment: comment}
	if existing == nil {
		return s.api.CreateRating(ctx, req)
	}
	return s.api.UpdateRating(ctx, existing.ID, req)
}
