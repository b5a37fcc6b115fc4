package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/apperror"
)

// Proposal is a freelancer's bid on a client project, as shown on the client
// proposals page. Accepting one proposal rejects its siblings for the same
// project (see policy.SingleWinner).
type Proposal struct {
	ID           uuid.UUID      `json:"id"`
	ProjectID    uuid.UUID      `json:"project_id"`
	ProjectTitle string         `json:"project_title"`
	CategoryID   string         `json:"category_id"`
	Freelancer   Party          `json:"freelancer"`
	CoverLetter  string         `json:"cover_letter"`
	Amount       float64        `json:"amount"`
	DeliveryDays int            `json:"delivery_days"`
	Skills       []string       `json:"skills,omitempty"`
	Status       ProposalStatus `json:"status"`
	Attachments  []Attachment   `json:"attachments,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewProposal validates and builds a pending proposal.
func NewProposal(projectID uuid.UUID, projectTitle string, freelancer Party, coverLetter string, amount float64, deliveryDays int) (*Proposal, error) {
	if coverLetter == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "cover letter is required")
	}
	if amount <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "proposed amount must be positive")
	}
	if deliveryDays <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "delivery time must be positive")
	}

	now := time.Now()
	return &Proposal{
		ID:           uuid.New(),
		ProjectID:    projectID,
		ProjectTitle: projectTitle,
		Freelancer:   freelancer,
		CoverLetter:  coverLetter,
		Amount:       amount,
		DeliveryDays: deliveryDays,
		Status:       ProposalStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (p *Proposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

func (p *Proposal) IsAccepted() bool {
	return p.Status == ProposalStatusAccepted
}

// IsOverdue reports whether the proposal's lifetime has passed.
func (p *Proposal) IsOverdue(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}
