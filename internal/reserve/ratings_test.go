package reserve

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyRatingForDoctorNotFound(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/ratings/doctor/{id}/my-rating", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "no rating"})
		})
	})

	rating, err := client.MyRatingForDoctor(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, rating)
}

func TestMyRatingForDoctorFound(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/ratings/doctor/{id}/my-rating", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, Rating{ID: 8, DoctorID: 3, Rating: 4})
		})
	})

	rating, err := client.MyRatingForDoctor(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, rating.Rating)
}

func TestMyRatingForDoctorOtherErrors(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/ratings/doctor/{id}/my-rating", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "boom"})
		})
	})

	_, err := client.MyRatingForDoctor(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}

func TestRatingValueValidation(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	for _, value := range []int{0, 6, -1} {
		_, err := client.CreateRating(context.Background(), RatingRequest{DoctorID: 3, Rating: value})
		assert.Error(t, err, "rating %d", value)
		_, err = client.UpdateRating(context.Background(), 1, RatingRequest{DoctorID: 3, Rating: value})
		assert.Error(t, err, "rating %d", value)
	}
}

func TestAdminRatingsPaging(t *testing.T) {
	var query map[string][]string
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/ratings", func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.Query()
			writeJSON(t, w, http.StatusOK, RatingsPage{
				Content:       []Rating{{ID: 1, Rating: 5}},
				TotalElements: 41,
				TotalPages:    5,
				Number:        2,
				Size:          10,
			})
		})
	})

	page, err := client.AdminRatings(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, query["page"])
	assert.Equal(t, []string{"10"}, query["size"])
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(41), page.TotalElements)
}

func TestDoctorRatingStats(t *testing.T) {
	client := newTestBackend(t, func(r chi.Router) {
		r.Get("/ratings/doctor/{id}/stats", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, http.StatusOK, RatingStats{AverageRating: 4.2, TotalRatings: 17, UserHasRated: true})
		})
	})

	stats, err := client.DoctorRatingStats(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4.2, stats.AverageRating)
	assert.Equal(t, int64(17), stats.TotalRatings)
	assert.True(t, stats.UserHasRated)
}
