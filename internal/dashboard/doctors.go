// Package dashboard assembles the composite page loads: the doctor listing
// enriched with rating aggregates and the patient overview fetched in
// parallel. Partial failures degrade to empty sections rather than failing
// the page.
package dashboard

import (
	"context"
	"sync"

	"github.com/medreserve/medreserve-go/internal/reserve"
	"github.com/medreserve/medreserve-go/internal/views"
	"github.com/medreserve/medreserve-go/pkg/logging"
)

// defaultEnrichConcurrency bounds parallel rating-stats fetches per listing.
const defaultEnrichConcurrency = 4

type doctorAPI interface {
	ActiveDoctors(ctx context.Context) ([]reserve.Doctor, error)
	DoctorRatingStats(ctx context.Context, doctorID int64) (*reserve.RatingStats, error)
}

// DoctorLister loads the doctor listing and enriches each doctor with rating
// stats using a bounded number of concurrent requests.
type DoctorLister struct {
	api         doctorAPI
	logger      *logging.Logger
	concurrency int
}

// NewDoctorLister builds a lister. Concurrency values below one fall back to
// the default.
func NewDoctorLister(api doctorAPI, logger *logging.Logger, concurrency int) *DoctorLister {
	if logger == nil {
		logger = logging.Default()
	}
	if concurrency < 1 {
		concurrency = defaultEnrichConcurrency
	}
	return &DoctorLister{api: api, logger: logger, concurrency: concurrency}
}

// List returns every active doctor with rating stats merged in. A failed
// stats fetch leaves that doctor unrated; only the listing call itself can
// fail the load.
func (l *DoctorLister) List(ctx context.Context) ([]views.DoctorView, error) {
	doctors, err := l.api.ActiveDoctors(ctx)
	if err != nil {
		return nil, err
	}

	statsByIndex := make([]*reserve.RatingStats, len(doctors))
	sem := make(chan struct{}, l.concurrency)
	var wg sync.WaitGroup
	for i := range doctors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			stats, err := l.api.DoctorRatingStats(ctx, doctors[i].ID)
			if err != nil {
				l.logger.Warn("rating stats unavailable", "doctor_id", doctors[i].ID, "error", err)
				return
			}
			statsByIndex[i] = stats
		}(i)
	}
	wg.Wait()

	out := make([]views.DoctorView, len(doctors))
	for i, doctor := range doctors {
		out[i] = views.NewDoctorView(doctor, statsByIndex[i])
	}
	return out, nil
}
