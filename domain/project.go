package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/apperror"
)

// Project is a client's posted job, listed on the projects page.
type Project struct {
	ID            uuid.UUID     `json:"id"`
	ClientID      uuid.UUID     `json:"client_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	CategoryID    string        `json:"category_id"`
	Budget        float64       `json:"budget"`
	DurationDays  int           `json:"duration_days"`
	Skills        []string      `json:"skills,omitempty"`
	Status        ProjectStatus `json:"status"`
	ProposalCount int           `json:"proposal_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewProject validates and builds a draft project.
func NewProject(clientID uuid.UUID, title, description, categoryID string, budget float64, durationDays int) (*Project, error) {
	if title == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "project title is required")
	}
	if description == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "project description is required")
	}
	if budget <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "project budget must be positive")
	}

	now := time.Now()
	return &Project{
		ID:           uuid.New(),
		ClientID:     clientID,
		Title:        title,
		Description:  description,
		CategoryID:   categoryID,
		Budget:       budget,
		DurationDays: durationDays,
		Status:       ProjectStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
