package domain

import "github.com/readydoer/marketplace-core/apperror"

// ProposalStatus is the closed status set of a client-side proposal.
type ProposalStatus string

const (
	ProposalStatusPending     ProposalStatus = "pending"
	ProposalStatusNegotiation ProposalStatus = "negotiation"
	ProposalStatusAccepted    ProposalStatus = "accepted"
	ProposalStatusRejected    ProposalStatus = "rejected"
	ProposalStatusArchived    ProposalStatus = "archived"
	ProposalStatusExpired     ProposalStatus = "expired"
)

var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalStatusPending:     {ProposalStatusNegotiation, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired},
	ProposalStatusNegotiation: {ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired},
	ProposalStatusAccepted:    {ProposalStatusArchived},
	ProposalStatusRejected:    {},
	ProposalStatusArchived:    {},
	ProposalStatusExpired:     {},
}

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusNegotiation, ProposalStatusAccepted,
		ProposalStatusRejected, ProposalStatusArchived, ProposalStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition is part of the lifecycle.
// Store mutations do not enforce it (permissive by omission); it backs
// validity reporting and the expiry sweep.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined.
func (s ProposalStatus) IsTerminal() bool {
	return len(proposalTransitions[s]) == 0
}

func NewProposalStatus(status string) (ProposalStatus, error) {
	s := ProposalStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "invalid proposal status")
	}
	return s, nil
}

// OrderStatus is the status set of a freelancer-side order. It extends the
// proposal set with an explicit cancelled state.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusNegotiation OrderStatus = "negotiation"
	OrderStatusAccepted    OrderStatus = "accepted"
	OrderStatusRejected    OrderStatus = "rejected"
	OrderStatusArchived    OrderStatus = "archived"
	OrderStatusCancelled   OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:     {OrderStatusNegotiation, OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusNegotiation: {OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusAccepted:    {OrderStatusArchived, OrderStatusCancelled},
	OrderStatusRejected:    {},
	OrderStatusArchived:    {},
	OrderStatusCancelled:   {},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusNegotiation, OrderStatusAccepted,
		OrderStatusRejected, OrderStatusArchived, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

func NewOrderStatus(status string) (OrderStatus, error) {
	s := OrderStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "invalid order status")
	}
	return s, nil
}

// ProjectStatus is the status set of a client project.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusDraft:      {ProjectStatusOpen, ProjectStatusCancelled},
	ProjectStatusOpen:       {ProjectStatusInProgress, ProjectStatusCancelled},
	ProjectStatusInProgress: {ProjectStatusCompleted, ProjectStatusCancelled},
	ProjectStatusCompleted:  {},
	ProjectStatusCancelled:  {},
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusOpen, ProjectStatusInProgress,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewProjectStatus(status string) (ProjectStatus, error) {
	s := ProjectStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "invalid project status")
	}
	return s, nil
}
