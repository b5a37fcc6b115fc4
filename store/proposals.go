package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/listing"
	"github.com/readydoer/marketplace-core/policy"
)

var proposalFields = listing.Accessors[domain.Proposal]{
	Search: func(p domain.Proposal) []string {
		fields := []string{p.Freelancer.Name, p.ProjectTitle, p.CoverLetter}
		return append(fields, p.Skills...)
	},
	Status:    func(p domain.Proposal) string { return string(p.Status) },
	Amount:    func(p domain.Proposal) float64 { return p.Amount },
	Duration:  func(p domain.Proposal) int { return p.DeliveryDays },
	Rating:    func(p domain.Proposal) float64 { return p.Freelancer.Rating },
	CreatedAt: func(p domain.Proposal) time.Time { return p.CreatedAt },
	Online:    func(p domain.Proposal) bool { return p.Freelancer.Online },
	Category:  func(p domain.Proposal) string { return p.CategoryID },
}

// ProposalStore backs the client proposals page. Accepting a proposal
// rejects every sibling for the same project (single-winner policy).
type ProposalStore struct {
	*Store[domain.Proposal]
}

// NewProposalStore seeds the store, attaches the single-winner policy and
// enables the expiry sweep for pending and negotiating proposals.
func NewProposalStore(seed []domain.Proposal, log logrus.FieldLogger) *ProposalStore {
	s := &ProposalStore{
		Store: New(
			"proposals",
			seed,
			func(p domain.Proposal) uuid.UUID { return p.ID },
			proposalFields,
			setProposalStatus,
			policy.NewSingleWinner(func(p domain.Proposal) string { return p.ProjectID.String() }),
			log,
		),
	}
	s.notFound = apperror.ErrProposalNotFound
	s.expired = func(p domain.Proposal, now time.Time) bool {
		if p.Status != domain.ProposalStatusPending && p.Status != domain.ProposalStatusNegotiation {
			return false
		}
		return p.IsOverdue(now)
	}
	return s
}

func setProposalStatus(p domain.Proposal, status string) domain.Proposal {
	p.Status = domain.ProposalStatus(status)
	p.UpdatedAt = time.Now()
	return p
}

// Accept marks the proposal accepted and cascades sibling rejection.
func (s *ProposalStore) Accept(id uuid.UUID) error {
	return s.Do(id, domain.ActionAccept)
}

// Reject marks the proposal rejected.
func (s *ProposalStore) Reject(id uuid.UUID) error {
	return s.Do(id, domain.ActionReject)
}

// Archive marks the proposal archived.
func (s *ProposalStore) Archive(id uuid.UUID) error {
	return s.Do(id, domain.ActionArchive)
}

// Negotiate moves the proposal into negotiation.
func (s *ProposalStore) Negotiate(id uuid.UUID) error {
	return s.Do(id, domain.ActionNegotiate)
}

// Reopen returns a negotiating proposal to pending.
func (s *ProposalStore) Reopen(id uuid.UUID) error {
	return s.Do(id, domain.ActionReopen)
}
