package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/listing"
)

var reviewFields = listing.Accessors[domain.Review]{
	Search: func(r domain.Review) []string {
		return []string{r.Reviewer.Name, r.ProjectTitle, r.Comment}
	},
	Rating:    func(r domain.Review) float64 { return float64(r.Rating) },
	CreatedAt: func(r domain.Review) time.Time { return r.CreatedAt },
	Online:    func(r domain.Review) bool { return r.Reviewer.Online },
	Category:  func(r domain.Review) string { return r.CategoryID },
}

// ReviewStore backs the reviews page. Reviews carry no status and take no
// actions; the store is read-only after seeding.
type ReviewStore struct {
	*Store[domain.Review]
}

func NewReviewStore(seed []domain.Review, log logrus.FieldLogger) *ReviewStore {
	return &ReviewStore{
		Store: New(
			"reviews",
			seed,
			func(r domain.Review) uuid.UUID { return r.ID },
			reviewFields,
			nil,
			nil,
			log,
		),
	}
}

// Summary holds the header numbers of the reviews page, computed once over
// the full set at load.
type Summary struct {
	AverageRating     float64
	TotalReviews      int
	RecommendationPct float64
}

// Summarize computes the page header summary from the full record set.
func (s *ReviewStore) Summarize() Summary {
	records := s.Snapshot()
	avg, total := listing.AverageRating(records, reviewFields)

	recommend := 0
	for _, r := range records {
		if r.WouldRecommend {
			recommend++
		}
	}
	pct := 0.0
	if total > 0 {
		pct = float64(recommend) / float64(total) * 100
	}

	return Summary{
		AverageRating:     avg,
		TotalReviews:      total,
		RecommendationPct: pct,
	}
}
