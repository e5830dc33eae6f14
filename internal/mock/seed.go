package mock

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

// DemoPassword is the shared credential for every seeded account.
const DemoPassword = "password123"

func seed(s *Store) {
	now := time.Now()

	customer := domain.User{
		ID:     "user1",
		Name:   "John Smith",
		Email:  "customer@example.com",
		Role:   domain.UserRoleCustomer,
		Avatar: "https://ui-avatars.com/api/?name=John+Smith&background=random",
	}
	agent := domain.User{
		ID:     "user2",
		Name:   "Sarah Williams",
		Email:  "agent@example.com",
		Role:   domain.UserRoleAgent,
		Avatar: "https://ui-avatars.com/api/?name=Sarah+Williams&background=random",
	}
	admin := domain.User{
		ID:     "user3",
		Name:   "Michael Brown",
		Email:  "admin@example.com",
		Role:   domain.UserRoleAdmin,
		Avatar: "https://ui-avatars.com/api/?name=Michael+Brown&background=random",
	}
	s.users = []domain.User{customer, agent, admin}

	// Every demo account shares one credential, so one hash is enough.
	// MinCost keeps startup fast; this is seed data, not a real user table.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.passwordHash = string(hash)

	assigned := func(u domain.User) *domain.User { return &u }

	s.tickets = []domain.Ticket{
		{
			ID:          "ticket1",
			Title:       "Cannot access dashboard",
			Description: "I'm getting an 'Access Denied' error when trying to view my dashboard. I've tried clearing my browser cache and using different browsers, but the issue persists.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityHigh,
			CreatedAt:   now.Add(-1 * time.Hour),
			UpdatedAt:   now.Add(-30 * time.Minute),
			CreatedBy:   customer,
			Tags:        []string{"Dashboard", "Access"},
		},
		{
			ID:          "ticket2",
			Title:       "Feature request: Dark mode",
			Description: "Could you add a dark mode to the application? It would be easier on the eyes when working at night.",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityMedium,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
			CreatedBy:   customer,
			AssignedTo:  assigned(agent),
			Tags:        []string{"Feature Request", "UI"},
		},
		{
			ID:          "ticket3",
			Title:       "Billing issue on subscription",
			Description: "I was charged twice for my monthly subscription. Please check and refund the extra charge.",
			Status:      domain.TicketStatusPending,
			Priority:    domain.TicketPriorityHigh,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
			CreatedBy:   customer,
			AssignedTo:  assigned(admin),
			Tags:        []string{"Billing", "Payment"},
		},
		{
			ID:          "ticket4",
			Title:       "App crashes on startup",
			Description: "After the latest update, the mobile app crashes immediately after the splash screen.",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityCritical,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
			CreatedBy:   customer,
			AssignedTo:  assigned(agent),
			Tags:        []string{"Mobile App", "Crash", "Bug"},
		},
		{
			ID:          "ticket5",
			Title:       "Need help with integration",
			Description: "I'm trying to integrate your API with my system but getting authentication errors.",
			Status:      domain.TicketStatusResolved,
			Priority:    domain.TicketPriorityMedium,
			CreatedAt:   now.Add(-96 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
			CreatedBy:   customer,
			AssignedTo:  assigned(agent),
			Tags:        []string{"API", "Integration"},
		},
	}

	s.messages = map[string][]domain.Message{
		"ticket1": {
			{
				ID:        "msg1-1",
				TicketID:  "ticket1",
				Content:   "I am unable to access the dashboard. When I click on the dashboard link, I get an error message saying 'Access Denied'.",
				CreatedAt: now.Add(-58 * time.Minute),
				Sender:    customer,
			},
			{
				ID:        "msg1-2",
				TicketID:  "ticket1",
				Content:   "Thank you for reporting this issue. I am investigating the problem and will get back to you shortly.",
				CreatedAt: now.Add(-56 * time.Minute),
				Sender:    agent,
			},
			{
				ID:        "msg1-3",
				TicketID:  "ticket1",
				Content:   "I found the issue. Your account permissions were incorrectly configured. I have fixed the permissions and you should be able to access the dashboard now. Please try again and let me know if you're still experiencing issues.",
				CreatedAt: now.Add(-55 * time.Minute),
				Sender:    agent,
			},
		},
		"ticket2": {
			{
				ID:        "msg2-1",
				TicketID:  "ticket2",
				Content:   "I would like to request a dark mode feature for the application. It would be much easier on the eyes when working late at night.",
				CreatedAt: now.Add(-24 * time.Hour),
				Sender:    customer,
			},
			{
				ID:        "msg2-2",
				TicketID:  "ticket2",
				Content:   "Thanks for the suggestion! We've been considering adding a dark mode. I'll add your request to our feature backlog and discuss it with the development team.",
				CreatedAt: now.Add(-23 * time.Hour),
				Sender:    agent,
			},
			{
				ID:        "msg2-3",
				TicketID:  "ticket2",
				Content:   "Great news! We've decided to prioritize the dark mode feature. Development will begin next sprint. Thanks for your suggestion!",
				CreatedAt: now.Add(-11 * time.Hour),
				Sender:    agent,
			},
		},
	}
}
