package views

import "github.com/medreserve/medreserve-go/internal/reserve"

// DoctorView is a doctor profile merged with its rating aggregate for the
// listing and detail pages.
type DoctorView struct {
	reserve.Doctor
	AverageRating float64
	TotalRatings  int64
	UserHasRated  bool
}

// NewDoctorView merges a doctor with rating stats. A nil stats pointer, used
// when the stats fetch failed, leaves the rating fields at zero so the card
// renders as unrated.
func NewDoctorView(doctor reserve.Doctor, stats *reserve.RatingStats) DoctorView {
	view := DoctorView{Doctor: doctor}
	if stats != nil {
		view.AverageRating = stats.AverageRating
		view.TotalRatings = stats.TotalRatings
		view.UserHasRated = stats.UserHasRated
	}
	return view
}
