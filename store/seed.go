package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/readydoer/marketplace-core/domain"
)

// Stores bundles every page store, seeded once from static fixtures. This is
// the injected data-access surface the UI layer depends on.
type Stores struct {
	Users         []domain.User
	Proposals     *ProposalStore
	Orders        *OrderStore
	Projects      *ProjectStore
	Reviews       *ReviewStore
	Conversations *ConversationStore
}

// Seed builds the full fixture set. Records are created here once; user
// actions only re-tag them, never create or delete.
func Seed(proposalLifetime time.Duration, log logrus.FieldLogger) *Stores {
	now := time.Now()

	// Auth is mocked: every seeded account shares one demo password and no
	// session is ever issued.
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	clientID := uuid.New()
	freelancerID := uuid.New()
	users := []domain.User{
		{
			ID:           clientID,
			Email:        "maria.client@readydoer.com",
			Username:     "maria_santos",
			PasswordHash: string(passwordHash),
			Role:         domain.RoleClient,
			CreatedAt:    now.AddDate(0, -8, 0),
		},
		{
			ID:           freelancerID,
			Email:        "daniel.freelancer@readydoer.com",
			Username:     "daniel_kim",
			PasswordHash: string(passwordHash),
			Role:         domain.RoleFreelancer,
			CreatedAt:    now.AddDate(0, -6, 0),
		},
	}

	alice := domain.Party{
		ID: uuid.New(), Name: "Alice Turner", AvatarURL: "https://i.pravatar.cc/150?u=alice",
		Rating: 4.9, Online: true, CountryCode: "GB",
	}
	bogdan := domain.Party{
		ID: uuid.New(), Name: "Bogdan Petrov", AvatarURL: "https://i.pravatar.cc/150?u=bogdan",
		Rating: 4.6, Online: false, CountryCode: "BG",
	}
	chitra := domain.Party{
		ID: uuid.New(), Name: "Chitra Rao", AvatarURL: "https://i.pravatar.cc/150?u=chitra",
		Rating: 4.2, Online: true, CountryCode: "IN",
	}
	diego := domain.Party{
		ID: uuid.New(), Name: "Diego Fuentes", AvatarURL: "https://i.pravatar.cc/150?u=diego",
		Rating: 3.8, Online: false, CountryCode: "MX",
	}

	landingProjectID := uuid.New()
	logoProjectID := uuid.New()
	expires := now.Add(proposalLifetime)

	proposals := []domain.Proposal{
		{
			ID: uuid.New(), ProjectID: landingProjectID, ProjectTitle: "SaaS landing page redesign",
			CategoryID: "web-development", Freelancer: alice,
			CoverLetter: "I have shipped a dozen marketing sites on this stack and can start this week.",
			Amount:      1200, DeliveryDays: 10,
			Skills: []string{"React", "TypeScript", "Tailwind"},
			Status: domain.ProposalStatusPending,
			Attachments: []domain.Attachment{
				{Name: "portfolio.pdf", URL: "https://cdn.readydoer.com/files/portfolio-alice.pdf"},
			},
			ExpiresAt: &expires,
			CreatedAt: now.Add(-36 * time.Hour), UpdatedAt: now.Add(-36 * time.Hour),
		},
		{
			ID: uuid.New(), ProjectID: landingProjectID, ProjectTitle: "SaaS landing page redesign",
			CategoryID: "web-development", Freelancer: bogdan,
			CoverLetter: "Frontend developer focused on conversion-oriented pages, happy to iterate on copy too.",
			Amount:      950, DeliveryDays: 14,
			Skills:    []string{"Vue.js", "Nuxt", "SCSS"},
			Status:    domain.ProposalStatusPending,
			ExpiresAt: &expires,
			CreatedAt: now.Add(-3 * 24 * time.Hour), UpdatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), ProjectID: logoProjectID, ProjectTitle: "Logo and brand kit",
			CategoryID: "design", Freelancer: chitra,
			CoverLetter: "Brand designer with a focus on early-stage startups. Three concepts, unlimited revisions.",
			Amount:      400, DeliveryDays: 7,
			Skills:    []string{"Illustrator", "Figma", "Branding"},
			Status:    domain.ProposalStatusNegotiation,
			ExpiresAt: &expires,
			CreatedAt: now.Add(-7 * 24 * time.Hour), UpdatedAt: now.Add(-5 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), ProjectID: logoProjectID, ProjectTitle: "Logo and brand kit",
			CategoryID: "design", Freelancer: diego,
			CoverLetter: "Fast turnaround, minimal style. See the attached moodboard.",
			Amount:      280, DeliveryDays: 5,
			Skills: []string{"Photoshop", "Logo Design"},
			Status: domain.ProposalStatusRejected,
			Attachments: []domain.Attachment{
				{Name: "moodboard.png", URL: "https://cdn.readydoer.com/files/moodboard-diego.png"},
			},
			ExpiresAt: &expires,
			CreatedAt: now.Add(-12 * 24 * time.Hour), UpdatedAt: now.Add(-9 * 24 * time.Hour),
		},
	}

	maria := domain.Party{
		ID: clientID, Name: "Maria Santos", AvatarURL: "https://i.pravatar.cc/150?u=maria",
		Rating: 4.7, Online: true, CountryCode: "PT",
	}
	jonas := domain.Party{
		ID: uuid.New(), Name: "Jonas Weber", AvatarURL: "https://i.pravatar.cc/150?u=jonas",
		Rating: 4.1, Online: false, CountryCode: "DE",
	}

	orders := []domain.Order{
		{
			ID: uuid.New(), Client: maria, ServiceTitle: "I will build a responsive React website",
			CategoryID: "web-development",
			Message:    "Need a five-page company site, content is ready.",
			Amount:     800, DeadlineDays: 12,
			Status:    domain.OrderStatusPending,
			CreatedAt: now.Add(-20 * time.Hour), UpdatedAt: now.Add(-20 * time.Hour),
		},
		{
			ID: uuid.New(), Client: jonas, ServiceTitle: "I will build a responsive React website",
			CategoryID: "web-development",
			Message:    "Landing page for a product launch next month.",
			Amount:     650, DeadlineDays: 9,
			Status:    domain.OrderStatusNegotiation,
			CreatedAt: now.Add(-4 * 24 * time.Hour), UpdatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Client: maria, ServiceTitle: "I will write SEO blog articles",
			CategoryID: "writing",
			Message:    "Ten articles, 1500 words each, tech niche.",
			Amount:     500, DeadlineDays: 30,
			Status:    domain.OrderStatusAccepted,
			CreatedAt: now.Add(-15 * 24 * time.Hour), UpdatedAt: now.Add(-14 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Client: jonas, ServiceTitle: "I will design social media creatives",
			CategoryID: "design",
			Message:    "Monthly batch of 20 creatives for two channels.",
			Amount:     350, DeadlineDays: 20,
			Status:    domain.OrderStatusArchived,
			CreatedAt: now.Add(-60 * 24 * time.Hour), UpdatedAt: now.Add(-30 * 24 * time.Hour),
		},
	}

	projects := []domain.Project{
		{
			ID: landingProjectID, ClientID: clientID, Title: "SaaS landing page redesign",
			Description: "Redesign our marketing site with a modern look and better conversion flow.",
			CategoryID:  "web-development", Budget: 1500, DurationDays: 21,
			Skills: []string{"React", "Figma"},
			Status: domain.ProjectStatusOpen, ProposalCount: 2,
			CreatedAt: now.Add(-10 * 24 * time.Hour), UpdatedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			ID: logoProjectID, ClientID: clientID, Title: "Logo and brand kit",
			Description: "Full brand identity for a fintech startup: logo, palette, typography.",
			CategoryID:  "design", Budget: 600, DurationDays: 14,
			Skills: []string{"Branding", "Illustrator"},
			Status: domain.ProjectStatusOpen, ProposalCount: 2,
			CreatedAt: now.Add(-14 * 24 * time.Hour), UpdatedAt: now.Add(-14 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), ClientID: clientID, Title: "Mobile app onboarding flow",
			Description: "Design and implement a three-step onboarding for our iOS app.",
			CategoryID:  "mobile-development", Budget: 2200, DurationDays: 30,
			Skills: []string{"Swift", "UI/UX Design"},
			Status: domain.ProjectStatusInProgress,
			CreatedAt: now.Add(-25 * 24 * time.Hour), UpdatedAt: now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), ClientID: clientID, Title: "Email campaign copywriting",
			Description: "Five-email nurture sequence for trial users.",
			CategoryID:  "writing", Budget: 300, DurationDays: 7,
			Status:    domain.ProjectStatusCompleted,
			CreatedAt: now.Add(-50 * 24 * time.Hour), UpdatedAt: now.Add(-40 * 24 * time.Hour),
		},
	}

	reviews := []domain.Review{
		{
			ID: uuid.New(), Reviewer: maria, ProjectTitle: "Email campaign copywriting",
			CategoryID: "writing", Rating: 5,
			Comment:        "Delivered ahead of schedule, every email converted well.",
			WouldRecommend: true,
			CreatedAt:      now.Add(-38 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Reviewer: jonas, ProjectTitle: "Social media creatives",
			CategoryID: "design", Rating: 4,
			Comment:        "Solid work, a couple of revision rounds needed.",
			WouldRecommend: true,
			CreatedAt:      now.Add(-28 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Reviewer: alice, ProjectTitle: "API integration",
			CategoryID: "web-development", Rating: 5,
			Comment:        "Clear brief, fast payment, would work together again.",
			WouldRecommend: true,
			CreatedAt:      now.Add(-18 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Reviewer: diego, ProjectTitle: "Banner pack",
			CategoryID: "design", Rating: 3,
			Comment:        "Scope kept changing mid-project.",
			WouldRecommend: false,
			CreatedAt:      now.Add(-8 * 24 * time.Hour),
		},
	}

	threadID := uuid.New()
	conversations := []domain.Conversation{
		{
			ID:           threadID,
			Participants: []domain.Party{maria, alice},
			Messages: []domain.Message{
				{
					ID: uuid.New(), ConversationID: threadID, SenderID: alice.ID,
					Body: "Hi Maria, I sent over the first mockups, let me know what you think.",
					SentAt: now.Add(-26 * time.Hour), Read: true,
				},
				{
					ID: uuid.New(), ConversationID: threadID, SenderID: maria.ID,
					Body: "They look great. Can we try a darker hero section?",
					SentAt: now.Add(-25 * time.Hour), Read: true,
				},
				{
					ID: uuid.New(), ConversationID: threadID, SenderID: alice.ID,
					Body: "Sure, updated version coming tomorrow.",
					SentAt: now.Add(-2 * time.Hour), Read: false,
				},
			},
		},
	}

	log.WithFields(logrus.Fields{
		"users":     len(users),
		"proposals": len(proposals),
		"orders":    len(orders),
		"projects":  len(projects),
		"reviews":   len(reviews),
	}).Info("fixture data seeded")

	return &Stores{
		Users:         users,
		Proposals:     NewProposalStore(proposals, log),
		Orders:        NewOrderStore(orders, log),
		Projects:      NewProjectStore(projects, log),
		Reviews:       NewReviewStore(reviews, log),
		Conversations: NewConversationStore(conversations),
	}
}
