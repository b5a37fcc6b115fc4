package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/listing"
)

var projectFields = listing.Accessors[domain.Project]{
	Search: func(p domain.Project) []string {
		fields := []string{p.Title, p.Description}
		return append(fields, p.Skills...)
	},
	Status:    func(p domain.Project) string { return string(p.Status) },
	Amount:    func(p domain.Project) float64 { return p.Budget },
	Duration:  func(p domain.Project) int { return p.DurationDays },
	CreatedAt: func(p domain.Project) time.Time { return p.CreatedAt },
	Category:  func(p domain.Project) string { return p.CategoryID },
}

// ProjectStore backs the client projects page.
type ProjectStore struct {
	*Store[domain.Project]
}

func NewProjectStore(seed []domain.Project, log logrus.FieldLogger) *ProjectStore {
	s := &ProjectStore{
		Store: New(
			"projects",
			seed,
			func(p domain.Project) uuid.UUID { return p.ID },
			projectFields,
			setProjectStatus,
			nil,
			log,
		),
	}
	s.notFound = apperror.ErrProjectNotFound
	return s
}

func setProjectStatus(p domain.Project, status string) domain.Project {
	p.Status = domain.ProjectStatus(status)
	p.UpdatedAt = time.Now()
	return p
}

// Open publishes a draft project.
func (s *ProjectStore) Open(id uuid.UUID) error {
	return s.SetStatus(id, string(domain.ProjectStatusOpen))
}

// Start moves the project into progress.
func (s *ProjectStore) Start(id uuid.UUID) error {
	return s.SetStatus(id, string(domain.ProjectStatusInProgress))
}

// Complete finishes the project.
func (s *ProjectStore) Complete(id uuid.UUID) error {
	return s.SetStatus(id, string(domain.ProjectStatusCompleted))
}

// Cancel cancels the project.
func (s *ProjectStore) Cancel(id uuid.UUID) error {
	return s.SetStatus(id, string(domain.ProjectStatusCancelled))
}
