package ports

import "github.com/hostelmanager/hostel-access-service/internal/core/domain"

// FallbackProvider produces deterministic substitute data for every remote
// read, used when the backend is unreachable. Implementations never touch the
// network and never fail. User and Token embed a time-varying component so
// sessions synthesized at different moments stay distinguishable.
type FallbackProvider interface {
	User(role domain.Role) *domain.User
	Token() string
	Room() *domain.Room
	Rooms() []domain.Room
	Students() []domain.User
	Complaints() []domain.Complaint
	Payments() []domain.Payment
	MessMenu() []domain.MessMenu
	RenewalForms() []domain.RenewalForm
}
