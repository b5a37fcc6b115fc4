package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/apperror"
)

// Review is feedback left after a completed project.
type Review struct {
	ID             uuid.UUID `json:"id"`
	Reviewer       Party     `json:"reviewer"`
	ProjectTitle   string    `json:"project_title"`
	CategoryID     string    `json:"category_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	WouldRecommend bool      `json:"would_recommend"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewReview validates and builds a review.
func NewReview(reviewer Party, projectTitle string, rating int, comment string, wouldRecommend bool) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.New(apperror.ErrCodeValidation, "rating must be between 1 and 5")
	}

	return &Review{
		ID:             uuid.New(),
		Reviewer:       reviewer,
		ProjectTitle:   projectTitle,
		Rating:         rating,
		Comment:        comment,
		WouldRecommend: wouldRecommend,
		CreatedAt:      time.Now(),
	}, nil
}
