package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readydoer/marketplace-core/apperror"
	"github.com/readydoer/marketplace-core/domain"
	"github.com/readydoer/marketplace-core/listing"
)

func testLog() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func proposalFixture() (proj1, proj2 uuid.UUID, proposals []domain.Proposal) {
	proj1 = uuid.New()
	proj2 = uuid.New()
	now := time.Now()

	proposals = []domain.Proposal{
		{
			ID: uuid.New(), ProjectID: proj1, ProjectTitle: "Landing page",
			Freelancer: domain.Party{Name: "Alice", Rating: 4.9, Online: true},
			Amount:     1200, DeliveryDays: 10, Status: domain.ProposalStatusPending,
			CreatedAt: now.Add(-1 * time.Hour), UpdatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID: uuid.New(), ProjectID: proj1, ProjectTitle: "Landing page",
			Freelancer: domain.Party{Name: "Bogdan", Rating: 4.6},
			Amount:     950, DeliveryDays: 14, Status: domain.ProposalStatusPending,
			CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: uuid.New(), ProjectID: proj2, ProjectTitle: "Logo kit",
			Freelancer: domain.Party{Name: "Chitra", Rating: 4.2, Online: true},
			Amount:     400, DeliveryDays: 7, Status: domain.ProposalStatusPending,
			CreatedAt: now.Add(-3 * time.Hour), UpdatedAt: now.Add(-3 * time.Hour),
		},
	}
	return proj1, proj2, proposals
}

func TestProposalStore_AcceptCascadesSiblingRejection(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	require.NoError(t, s.Accept(proposals[0].ID))

	winner, err := s.Get(proposals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, winner.Status)

	sibling, err := s.Get(proposals[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusRejected, sibling.Status)

	unrelated, err := s.Get(proposals[2].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusPending, unrelated.Status)
}

func TestProposalStore_RejectDoesNotCascade(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	require.NoError(t, s.Reject(proposals[0].ID))

	sibling, err := s.Get(proposals[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusPending, sibling.Status)
}

func TestProposalStore_ActionsArePermissive(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	// No precondition check: accepting an already-rejected record is not
	// prevented, matching the original pages.
	require.NoError(t, s.Reject(proposals[0].ID))
	require.NoError(t, s.Accept(proposals[0].ID))

	rec, err := s.Get(proposals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, rec.Status)
}

func TestOrderStore_AcceptDoesNotCascade(t *testing.T) {
	now := time.Now()
	maria := domain.Party{ID: uuid.New(), Name: "Maria", Rating: 4.7}
	orders := []domain.Order{
		{ID: uuid.New(), Client: maria, ServiceTitle: "Website", Amount: 800,
			Status: domain.OrderStatusPending, CreatedAt: now},
		{ID: uuid.New(), Client: maria, ServiceTitle: "Articles", Amount: 500,
			Status: domain.OrderStatusPending, CreatedAt: now},
	}
	s := NewOrderStore(orders, testLog())

	require.NoError(t, s.Accept(orders[0].ID))

	accepted, err := s.Get(orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAccepted, accepted.Status)

	// Sibling order from the same client is unaffected.
	other, err := s.Get(orders[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, other.Status)
}

func TestStore_MutationReplacesSliceNotSnapshot(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	before := s.Snapshot()
	require.NoError(t, s.Accept(proposals[0].ID))

	// The earlier snapshot is isolated from the mutation.
	assert.Equal(t, domain.ProposalStatusPending, before[0].Status)
	after := s.Snapshot()
	assert.Equal(t, domain.ProposalStatusAccepted, after[0].Status)
	assert.Len(t, after, len(before))
}

func TestStore_ListNeverDropsRecordsFromStore(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	res := s.List(listing.FilterState{Status: string(domain.ProposalStatusPending), Search: "alice"}, listing.SortNewest)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Matched)

	// Filtering is a view concern only.
	assert.Equal(t, 3, s.Len())
}

func TestStore_GetUnknownID(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	_, err := s.Get(uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	assert.True(t, apperror.IsNotFound(s.Do(uuid.New(), domain.ActionAccept)))
}

func TestStore_TypedNotFoundSentinels(t *testing.T) {
	_, _, proposals := proposalFixture()
	ps := NewProposalStore(proposals, testLog())
	_, err := ps.Get(uuid.New())
	assert.ErrorIs(t, err, apperror.ErrProposalNotFound)
	assert.ErrorIs(t, ps.Do(uuid.New(), domain.ActionAccept), apperror.ErrProposalNotFound)

	os := NewOrderStore(nil, testLog())
	_, err = os.Get(uuid.New())
	assert.ErrorIs(t, err, apperror.ErrOrderNotFound)

	prs := NewProjectStore(nil, testLog())
	assert.ErrorIs(t, prs.Open(uuid.New()), apperror.ErrProjectNotFound)

	rs := NewReviewStore(nil, testLog())
	_, err = rs.Get(uuid.New())
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
}

func TestStore_AmountBoundsIgnoreFilters(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())

	min, max, ok := s.AmountBounds()
	require.True(t, ok)
	assert.Equal(t, 400.0, min)
	assert.Equal(t, 1200.0, max)

	// Narrow the view, bounds stay put.
	res := s.List(listing.FilterState{Search: "logo"}, "")
	require.Equal(t, 1, res.Matched)

	min2, max2, ok2 := s.AmountBounds()
	require.True(t, ok2)
	assert.Equal(t, min, min2)
	assert.Equal(t, max, max2)
}

func TestStore_CountByStatus(t *testing.T) {
	_, _, proposals := proposalFixture()
	s := NewProposalStore(proposals, testLog())
	require.NoError(t, s.Accept(proposals[0].ID))

	counts := s.CountByStatus(listing.FilterState{})
	assert.Equal(t, 1, counts["accepted"])
	assert.Equal(t, 1, counts["rejected"])
	assert.Equal(t, 1, counts["pending"])

	counts = s.CountByStatus(listing.FilterState{Search: "logo"})
	assert.Equal(t, map[string]int{"pending": 1}, counts)
}

func TestProposalStore_SweepExpired(t *testing.T) {
	_, _, proposals := proposalFixture()
	past := time.Now().Add(-time.Hour)
	proposals[0].ExpiresAt = &past
	proposals[1].Status = domain.ProposalStatusAccepted
	proposals[1].ExpiresAt = &past
	s := NewProposalStore(proposals, testLog())

	swept := s.SweepExpired(time.Now())
	assert.Equal(t, 1, swept)

	expired, err := s.Get(proposals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExpired, expired.Status)

	// Accepted records never expire, with or without a deadline.
	kept, err := s.Get(proposals[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, kept.Status)

	// Nothing left to sweep.
	assert.Zero(t, s.SweepExpired(time.Now()))
}

func TestReviewStore_IsReadOnly(t *testing.T) {
	review, err := domain.NewReview(domain.Party{Name: "Maria"}, "Logo kit", 5, "great", true)
	require.NoError(t, err)

	s := NewReviewStore([]domain.Review{*review}, testLog())
	err = s.Do(review.ID, domain.ActionAccept)
	assert.True(t, apperror.IsValidation(err))
}

func TestReviewStore_Summarize(t *testing.T) {
	now := time.Now()
	reviews := []domain.Review{
		{ID: uuid.New(), Rating: 5, WouldRecommend: true, CreatedAt: now},
		{ID: uuid.New(), Rating: 4, WouldRecommend: true, CreatedAt: now},
		{ID: uuid.New(), Rating: 3, WouldRecommend: false, CreatedAt: now},
	}
	s := NewReviewStore(reviews, testLog())

	sum := s.Summarize()
	assert.Equal(t, 3, sum.TotalReviews)
	assert.InDelta(t, 4.0, sum.AverageRating, 0.0001)
	assert.InDelta(t, 66.6666, sum.RecommendationPct, 0.001)
}

func TestSeed_BuildsAllStores(t *testing.T) {
	stores := Seed(14*24*time.Hour, testLog())

	assert.NotEmpty(t, stores.Users)
	assert.NotZero(t, stores.Proposals.Len())
	assert.NotZero(t, stores.Orders.Len())
	assert.NotZero(t, stores.Projects.Len())
	assert.NotZero(t, stores.Reviews.Len())
	assert.NotEmpty(t, stores.Conversations.Snapshot())

	// Two seeded proposals share a project, so the cascade rule has data
	// to act on out of the box.
	byProject := make(map[uuid.UUID]int)
	for _, p := range stores.Proposals.Snapshot() {
		byProject[p.ProjectID]++
	}
	shared := false
	for _, n := range byProject {
		if n > 1 {
			shared = true
		}
	}
	assert.True(t, shared)
}
