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

var orderFields = listing.Accessors[domain.Order]{
	Search: func(o domain.Order) []string {
		return []string{o.Client.Name, o.ServiceTitle, o.Message}
	},
	Status:    func(o domain.Order) string { return string(o.Status) },
	Amount:    func(o domain.Order) float64 { return o.Amount },
	Duration:  func(o domain.Order) int { return o.DeadlineDays },
	Rating:    func(o domain.Order) float64 { return o.Client.Rating },
	CreatedAt: func(o domain.Order) time.Time { return o.CreatedAt },
	Online:    func(o domain.Order) bool { return o.Client.Online },
	Category:  func(o domain.Order) string { return o.CategoryID },
}

// OrderStore backs the freelancer orders page. Accepting an order touches
// that order only; sibling orders from the same client are unaffected.
type OrderStore struct {
	*Store[domain.Order]
}

// NewOrderStore seeds the store with the no-cascade policy.
func NewOrderStore(seed []domain.Order, log logrus.FieldLogger) *OrderStore {
	s := &OrderStore{
		Store: New(
			"orders",
			seed,
			func(o domain.Order) uuid.UUID { return o.ID },
			orderFields,
			setOrderStatus,
			policy.NoCascade[domain.Order]{},
			log,
		),
	}
	s.notFound = apperror.ErrOrderNotFound
	return s
}

func setOrderStatus(o domain.Order, status string) domain.Order {
	o.Status = domain.OrderStatus(status)
	o.UpdatedAt = time.Now()
	return o
}

// Accept marks the order accepted.
func (s *OrderStore) Accept(id uuid.UUID) error {
	return s.Do(id, domain.ActionAccept)
}

// Reject marks the order rejected.
func (s *OrderStore) Reject(id uuid.UUID) error {
	return s.Do(id, domain.ActionReject)
}

// Archive marks the order archived.
func (s *OrderStore) Archive(id uuid.UUID) error {
	return s.Do(id, domain.ActionArchive)
}

// Cancel marks the order cancelled.
func (s *OrderStore) Cancel(id uuid.UUID) error {
	return s.Do(id, domain.ActionCancel)
}

// Negotiate moves the order into negotiation.
func (s *OrderStore) Negotiate(id uuid.UUID) error {
	return s.Do(id, domain.ActionNegotiate)
}
