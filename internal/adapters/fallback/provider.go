// Package fallback fabricates deterministic substitute data for every remote
// read. It is consulted only when the backend is unavailable; nothing here
// ever touches the network or fails.
package fallback

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

type Provider struct {
	// signingKey signs demo tokens so a synthetic session is structurally a
	// bearer token. The key is per-process; demo tokens are never validated
	// server-side.
	signingKey []byte
}

var _ ports.FallbackProvider = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{signingKey: []byte(uuid.NewString())}
}

// User fabricates a demo user for the given role. The identifier embeds the
// current time so sessions synthesized at different moments stay apart.
func (p *Provider) User(role domain.Role) *domain.User {
	user := &domain.User{
		ID:    fmt.Sprintf("demo-user-%d-%s", time.Now().UnixMilli(), shortID()),
		Email: "demo@hostel.com",
		Name:  "Demo User",
		Role:  role,
		Phone: "123-456-7890",
	}
	if role == domain.RoleStudent {
		user.RoomNumber = "A101"
	}
	return user
}

// Token mints a fresh HS256 demo token. Each call yields a distinct token.
func (p *Provider) Token() string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "demo-user",
		"role": string(domain.RoleStudent),
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
		"jti":  uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.signingKey)
	if err != nil {
		// HS256 signing over in-memory bytes cannot fail; keep the contract
		// that the provider never errors.
		return fmt.Sprintf("demo-token-%d-%s", now.UnixMilli(), shortID())
	}
	return signed
}

func (p *Provider) Room() *domain.Room {
	return &domain.Room{
		RoomNumber: "A101",
		Capacity:   2,
		Occupied:   1,
		RoomType:   domain.RoomDouble,
		Floor:      "1",
		Status:     domain.RoomAvailable,
		Roommates: []domain.User{
			{Name: "John Doe", Email: "john.doe@example.com", Phone: "123-456-7890"},
		},
	}
}

func (p *Provider) Rooms() []domain.Room {
	return []domain.Room{
		{RoomNumber: "A101", Capacity: 2, Occupied: 1, RoomType: domain.RoomDouble, Floor: "1", Status: domain.RoomAvailable},
		{RoomNumber: "A102", Capacity: 2, Occupied: 2, RoomType: domain.RoomDouble, Floor: "1", Status: domain.RoomFull},
		{RoomNumber: "B101", Capacity: 1, Occupied: 1, RoomType: domain.RoomSingle, Floor: "2", Status: domain.RoomAvailable},
		{RoomNumber: "B102", Capacity: 4, Occupied: 3, RoomType: domain.RoomQuad, Floor: "2", Status: domain.RoomAvailable},
	}
}

func (p *Provider) Students() []domain.User {
	return []domain.User{
		{ID: "student-1", Email: "demo@student.com", Name: "Demo Student", Role: domain.RoleStudent, RoomNumber: "A101", Phone: "123-456-7890"},
		{ID: "student-2", Email: "john@student.com", Name: "John Smith", Role: domain.RoleStudent, RoomNumber: "A102", Phone: "987-654-3210"},
		{ID: "student-3", Email: "jane@student.com", Name: "Jane Doe", Role: domain.RoleStudent, Phone: "555-123-4567"},
	}
}

func (p *Provider) Complaints() []domain.Complaint {
	return []domain.Complaint{
		{
			ID:          "comp-1",
			StudentID:   "student-1",
			StudentName: "Demo Student",
			RoomNumber:  "A101",
			Title:       "Broken AC",
			Description: "Air conditioning unit not working properly",
			Category:    domain.ComplaintMaintenance,
			Status:      domain.ComplaintPending,
			CreatedAt:   "2024-01-15T10:00:00",
		},
		{
			ID:          "comp-2",
			StudentID:   "student-1",
			StudentName: "Demo Student",
			RoomNumber:  "A101",
			Title:       "Water leakage",
			Description: "Bathroom faucet is leaking",
			Category:    domain.ComplaintPlumbing,
			Status:      domain.ComplaintInProgress,
			CreatedAt:   "2024-01-14T15:30:00",
		},
	}
}

func (p *Provider) Payments() []domain.Payment {
	return []domain.Payment{
		{
			ID:          "pay-1",
			StudentID:   "student-1",
			StudentName: "Demo Student",
			Amount:      5000,
			Month:       "January",
			Year:        "2024",
			PaymentType: domain.PaymentHostelFee,
			Status:      domain.PaymentPaid,
			DueDate:     "2024-01-15",
			PaidDate:    "2024-01-10",
		},
		{
			ID:          "pay-2",
			StudentID:   "student-1",
			StudentName: "Demo Student",
			Amount:      3000,
			Month:       "February",
			Year:        "2024",
			PaymentType: domain.PaymentMessFee,
			Status:      domain.PaymentPending,
			DueDate:     "2024-02-15",
		},
	}
}

func (p *Provider) MessMenu() []domain.MessMenu {
	return []domain.MessMenu{
		{
			ID:        "menu-1",
			Day:       "monday",
			MealType:  domain.MealBreakfast,
			Items:     []string{"Bread", "Butter", "Tea", "Boiled Eggs"},
			CreatedAt: "2024-01-01T00:00:00",
		},
		{
			ID:        "menu-2",
			Day:       "monday",
			MealType:  domain.MealLunch,
			Items:     []string{"Rice", "Dal", "Vegetables", "Roti"},
			CreatedAt: "2024-01-01T00:00:00",
		},
	}
}

func (p *Provider) RenewalForms() []domain.RenewalForm {
	return []domain.RenewalForm{
		{
			ID:          "renewal-1",
			StudentID:   "student-1",
			StudentName: "Demo Student",
			RoomNumber:  "A101",
			Status:      domain.RenewalSubmitted,
			CreatedAt:   "2024-01-10T10:00:00",
			UpdatedAt:   "2024-01-10T10:00:00",
		},
	}
}

func shortID() string {
	return uuid.NewString()[:8]
}
