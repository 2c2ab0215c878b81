package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
	"github.com/hostelmanager/hostel-access-service/internal/metrics"
)

// AdminService covers the admin dashboard's operations. Same policy as the
// student side: reads degrade to fallback data, mutations surface their
// failures. Review-state changes are checked against the forward-only state
// machines before any request is built.
type AdminService struct {
	remote
	store    ports.SessionStore
	api      ports.RemoteAPI
	fallback ports.FallbackProvider
}

func NewAdminService(
	store ports.SessionStore,
	api ports.RemoteAPI,
	fb ports.FallbackProvider,
	cb *gobreaker.CircuitBreaker,
	m *metrics.Metrics,
	log *logrus.Logger,
) *AdminService {
	return &AdminService{
		remote:   remote{cb: cb, metrics: m, log: log},
		store:    store,
		api:      api,
		fallback: fb,
	}
}

func (s *AdminService) token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

func (s *AdminService) Students(ctx context.Context) ([]domain.User, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("students", func() (interface{}, error) {
		return s.api.Students(ctx, token)
	})
	if err != nil {
		s.fellBack("students", err)
		return s.fallback.Students(), domain.SourceFallback, nil
	}
	return v.([]domain.User), domain.SourceServer, nil
}

func (s *AdminService) DeleteStudent(ctx context.Context, studentID string) (*ports.MutationResult, error) {
	if studentID == "" {
		return nil, domain.NewValidationError("student_id", "student id is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("delete_student", func() (interface{}, error) {
		return s.api.DeleteStudent(ctx, token, studentID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) CreateRoom(ctx context.Context, room domain.Room) (*ports.MutationResult, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return nil, domain.NewValidationError("room_number", "room number is required")
	}
	if room.Capacity <= 0 {
		return nil, domain.NewValidationError("capacity", "capacity must be positive")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("create_room", func() (interface{}, error) {
		return s.api.CreateRoom(ctx, token, room)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) AssignRoom(ctx context.Context, roomNumber, studentID string) (*ports.MutationResult, error) {
	if roomNumber == "" || studentID == "" {
		return nil, domain.NewValidationError("assignment", "room number and student id are required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("assign_room", func() (interface{}, error) {
		return s.api.AssignRoom(ctx, token, roomNumber, studentID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

// UpdateComplaintStatus moves a complaint forward through
// pending -> in_progress -> resolved. Backward moves are rejected locally.
func (s *AdminService) UpdateComplaintStatus(ctx context.Context, complaintID string, current, next domain.ComplaintStatus) (*ports.MutationResult, error) {
	if complaintID == "" {
		return nil, domain.NewValidationError("complaint_id", "complaint id is required")
	}
	if !current.CanTransitionTo(next) {
		return nil, domain.NewValidationError("status", string(current)+" cannot move to "+string(next))
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("update_complaint_status", func() (interface{}, error) {
		return s.api.UpdateComplaintStatus(ctx, token, complaintID, next)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) CreatePayment(ctx context.Context, payment domain.Payment) (*ports.MutationResult, error) {
	if payment.StudentID == "" {
		return nil, domain.NewValidationError("student_id", "student id is required")
	}
	if payment.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be positive")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("create_payment", func() (interface{}, error) {
		return s.api.CreatePayment(ctx, token, payment)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) MarkPaymentPaid(ctx context.Context, paymentID string) (*ports.MutationResult, error) {
	if paymentID == "" {
		return nil, domain.NewValidationError("payment_id", "payment id is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("mark_payment_paid", func() (interface{}, error) {
		return s.api.MarkPaymentPaid(ctx, token, paymentID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) CreateMessMenu(ctx context.Context, menu domain.MessMenu) (*ports.MutationResult, error) {
	if menu.Day == "" || menu.MealType == "" {
		return nil, domain.NewValidationError("menu", "day and meal type are required")
	}
	if len(menu.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("create_mess_menu", func() (interface{}, error) {
		return s.api.CreateMessMenu(ctx, token, menu)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) DeleteMessMenu(ctx context.Context, menuID string) (*ports.MutationResult, error) {
	if menuID == "" {
		return nil, domain.NewValidationError("menu_id", "menu id is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("delete_mess_menu", func() (interface{}, error) {
		return s.api.DeleteMessMenu(ctx, token, menuID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

// UpdateRenewalForm applies a review decision. The current status must allow
// the requested move; approved and rejected forms are final.
func (s *AdminService) UpdateRenewalForm(ctx context.Context, formID string, current domain.RenewalStatus, update ports.RenewalFormUpdate) (*ports.MutationResult, error) {
	if formID == "" {
		return nil, domain.NewValidationError("form_id", "form id is required")
	}
	if update.Status != "" && !current.CanTransitionTo(update.Status) {
		return nil, domain.NewValidationError("status", string(current)+" cannot move to "+string(update.Status))
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("update_renewal_form", func() (interface{}, error) {
		return s.api.UpdateRenewalForm(ctx, token, formID, update)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) UpdateRenewalFormFiles(ctx context.Context, formID string, files map[string]string) (*ports.MutationResult, error) {
	if formID == "" {
		return nil, domain.NewValidationError("form_id", "form id is required")
	}
	for kind := range files {
		if !domain.ValidDocumentKind(kind) {
			return nil, domain.NewValidationError("files", "unknown document kind: "+kind)
		}
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("update_renewal_form_files", func() (interface{}, error) {
		return s.api.UpdateRenewalFormFiles(ctx, token, formID, files)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *AdminService) DeleteRenewalForm(ctx context.Context, formID string) (*ports.MutationResult, error) {
	if formID == "" {
		return nil, domain.NewValidationError("form_id", "form id is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("delete_renewal_form", func() (interface{}, error) {
		return s.api.DeleteRenewalForm(ctx, token, formID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}
