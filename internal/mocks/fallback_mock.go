package mocks

import (
	"sync"

	"github.com/hostelmanager/hostel-access-service/internal/adapters/fallback"
	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

// CountingFallback wraps the real fallback provider and records which
// operations consulted it, so tests can assert the fallback path stayed cold
// on a healthy backend.
type CountingFallback struct {
	mu    sync.Mutex
	Calls []string

	inner *fallback.Provider
}

var _ ports.FallbackProvider = (*CountingFallback)(nil)

func NewCountingFallback() *CountingFallback {
	return &CountingFallback{inner: fallback.NewProvider()}
}

func (f *CountingFallback) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, op)
}

// TotalCalls reports how many times any fallback value was produced.
func (f *CountingFallback) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *CountingFallback) User(role domain.Role) *domain.User {
	f.record("user")
	return f.inner.User(role)
}

func (f *CountingFallback) Token() string {
	f.record("token")
	return f.inner.Token()
}

func (f *CountingFallback) Room() *domain.Room {
	f.record("room")
	return f.inner.Room()
}

func (f *CountingFallback) Rooms() []domain.Room {
	f.record("rooms")
	return f.inner.Rooms()
}

func (f *CountingFallback) Students() []domain.User {
	f.record("students")
	return f.inner.Students()
}

func (f *CountingFallback) Complaints() []domain.Complaint {
	f.record("complaints")
	return f.inner.Complaints()
}

func (f *CountingFallback) Payments() []domain.Payment {
	f.record("payments")
	return f.inner.Payments()
}

func (f *CountingFallback) MessMenu() []domain.MessMenu {
	f.record("mess_menu")
	return f.inner.MessMenu()
}

func (f *CountingFallback) RenewalForms() []domain.RenewalForm {
	f.record("renewal_forms")
	return f.inner.RenewalForms()
}
