// Package dashboard assembles the summary blocks of the client and
// freelancer dashboards from the page stores. Everything is recomputed
// synchronously on demand; there is no caching or incremental recomputation.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/store"
)

// ProposalSource is the slice of the proposal store the dashboard reads.
type ProposalSource interface {
	Snapshot() []domain.Proposal
}

// OrderSource is the slice of the order store the dashboard reads.
type OrderSource interface {
	Snapshot() []domain.Order
}

// ProjectSource is the slice of the project store the dashboard reads.
type ProjectSource interface {
	Snapshot() []domain.Project
}

// ReviewSource provides the review page summary.
type ReviewSource interface {
	Summarize() store.Summary
}

// MessageSource provides unread message counts.
type MessageSource interface {
	UnreadTotal(participantID uuid.UUID) int
}

// ClientStats are the numbers on the client dashboard header.
type ClientStats struct {
	ProjectsTotal      int            `json:"projects_total"`
	ProjectsByStatus   map[string]int `json:"projects_by_status"`
	ProposalsTotal     int            `json:"proposals_total"`
	ProposalsPending   int            `json:"proposals_pending"`
	ProposalsAccepted  int            `json:"proposals_accepted"`
	ProposalsRejected  int            `json:"proposals_rejected"`
	UnreadMessages     int            `json:"unread_messages"`
	TotalBudgetPending float64        `json:"total_budget_pending"`
}

// FreelancerStats are the numbers on the freelancer dashboard header.
type FreelancerStats struct {
	OrdersTotal    int            `json:"orders_total"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	CompletionRate float64        `json:"completion_rate"`
	AverageRating  float64        `json:"average_rating"`
	TotalReviews   int            `json:"total_reviews"`
	UnreadMessages int            `json:"unread_messages"`
}

// Service computes dashboard stats from injected sources.
type Service struct {
	proposals ProposalSource
	orders    OrderSource
	projects  ProjectSource
	reviews   ReviewSource
	messages  MessageSource
}

func NewService(proposals ProposalSource, orders OrderSource, projects ProjectSource, reviews ReviewSource, messages MessageSource) *Service {
	return &Service{
		proposals: proposals,
		orders:    orders,
		projects:  projects,
		reviews:   reviews,
		messages:  messages,
	}
}

// ClientStats computes the client dashboard block for the given user.
func (s *Service) ClientStats(userID uuid.UUID) ClientStats {
	stats := ClientStats{
		ProjectsByStatus: make(map[string]int),
	}

	for _, p := range s.projects.Snapshot() {
		stats.ProjectsTotal++
		stats.ProjectsByStatus[string(p.Status)]++
	}

	for _, p := range s.proposals.Snapshot() {
		stats.ProposalsTotal++
		switch p.Status {
		case domain.ProposalStatusPending, domain.ProposalStatusNegotiation:
			stats.ProposalsPending++
			stats.TotalBudgetPending += p.Amount
		case domain.ProposalStatusAccepted:
			stats.ProposalsAccepted++
		case domain.ProposalStatusRejected:
			stats.ProposalsRejected++
		}
	}

	if s.messages != nil {
		stats.UnreadMessages = s.messages.UnreadTotal(userID)
	}
	return stats
}

// FreelancerStats computes the freelancer dashboard block for the given user.
func (s *Service) FreelancerStats(userID uuid.UUID) FreelancerStats {
	stats := FreelancerStats{
		OrdersByStatus: make(map[string]int),
	}

	completed := 0
	for _, o := range s.orders.Snapshot() {
		stats.OrdersTotal++
		stats.OrdersByStatus[string(o.Status)]++
		if o.Status == domain.OrderStatusArchived {
			completed++
		}
	}
	if stats.OrdersTotal > 0 {
		stats.CompletionRate = float64(completed) / float64(stats.OrdersTotal) * 100
	}

	if s.reviews != nil {
		summary := s.reviews.Summarize()
		stats.AverageRating = summary.AverageRating
		stats.TotalReviews = summary.TotalReviews
	}
	if s.messages != nil {
		stats.UnreadMessages = s.messages.UnreadTotal(userID)
	}
	return stats
}
