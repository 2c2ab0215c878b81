// Package mocks provides mock implementations of port interfaces for testing.
// Mocks track calls and allow error injection so services can be exercised
// without a reachable backend.
package mocks

import (
	"context"
	"sync"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

// MockRemoteAPI implements ports.RemoteAPI in memory.
//
// Err, when set, makes every operation fail with that error — the standard
// way to simulate an unreachable backend. Canned values configure what
// successful calls return. Calls and Tokens record what the access layer
// actually sent.
type MockRemoteAPI struct {
	mu     sync.Mutex
	Calls  []string
	Tokens []string

	Err error

	LoginValue        *ports.LoginResult
	RegisterValue     *ports.LoginResult
	RoomsValue        []domain.Room
	MyRoomValue       *domain.Room
	StudentsValue     []domain.User
	ComplaintsValue   []domain.Complaint
	PaymentsValue     []domain.Payment
	MessMenuValue     []domain.MessMenu
	RenewalFormsValue []domain.RenewalForm
	RenewalFormValue  *domain.RenewalForm
	MutationValue     *ports.MutationResult
	UploadValue       *ports.UploadedFile
	DownloadValue     []byte
}

var _ ports.RemoteAPI = (*MockRemoteAPI)(nil)

func NewMockRemoteAPI() *MockRemoteAPI {
	return &MockRemoteAPI{}
}

func (m *MockRemoteAPI) record(op, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, op)
	if token != "" {
		m.Tokens = append(m.Tokens, token)
	}
	return m.Err
}

// CallCount returns how many times op was invoked.
func (m *MockRemoteAPI) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == op {
			n++
		}
	}
	return n
}

func (m *MockRemoteAPI) mutation() *ports.MutationResult {
	if m.MutationValue != nil {
		return m.MutationValue
	}
	return &ports.MutationResult{Message: "ok", Success: true}
}

func (m *MockRemoteAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if err := m.record("login", ""); err != nil {
		return nil, err
	}
	return m.LoginValue, nil
}

func (m *MockRemoteAPI) Register(ctx context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	if err := m.record("register", ""); err != nil {
		return nil, err
	}
	return m.RegisterValue, nil
}

func (m *MockRemoteAPI) Rooms(ctx context.Context, token string) ([]domain.Room, error) {
	if err := m.record("rooms", token); err != nil {
		return nil, err
	}
	return m.RoomsValue, nil
}

func (m *MockRemoteAPI) MyRoom(ctx context.Context, token string) (*domain.Room, error) {
	if err := m.record("my_room", token); err != nil {
		return nil, err
	}
	return m.MyRoomValue, nil
}

func (m *MockRemoteAPI) CreateRoom(ctx context.Context, token string, room domain.Room) (*ports.MutationResult, error) {
	if err := m.record("create_room", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) AssignRoom(ctx context.Context, token, roomNumber, studentID string) (*ports.MutationResult, error) {
	if err := m.record("assign_room", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) Students(ctx context.Context, token string) ([]domain.User, error) {
	if err := m.record("students", token); err != nil {
		return nil, err
	}
	return m.StudentsValue, nil
}

func (m *MockRemoteAPI) DeleteStudent(ctx context.Context, token, studentID string) (*ports.MutationResult, error) {
	if err := m.record("delete_student", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) Complaints(ctx context.Context, token string) ([]domain.Complaint, error) {
	if err := m.record("complaints", token); err != nil {
		return nil, err
	}
	return m.ComplaintsValue, nil
}

func (m *MockRemoteAPI) CreateComplaint(ctx context.Context, token string, in ports.ComplaintInput) (*ports.MutationResult, error) {
	if err := m.record("create_complaint", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) UpdateComplaintStatus(ctx context.Context, token, complaintID string, status domain.ComplaintStatus) (*ports.MutationResult, error) {
	if err := m.record("update_complaint_status", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) Payments(ctx context.Context, token string) ([]domain.Payment, error) {
	if err := m.record("payments", token); err != nil {
		return nil, err
	}
	return m.PaymentsValue, nil
}

func (m *MockRemoteAPI) CreatePayment(ctx context.Context, token string, payment domain.Payment) (*ports.MutationResult, error) {
	if err := m.record("create_payment", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) MarkPaymentPaid(ctx context.Context, token, paymentID string) (*ports.MutationResult, error) {
	if err := m.record("mark_payment_paid", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) MessMenu(ctx context.Context, token string) ([]domain.MessMenu, error) {
	if err := m.record("mess_menu", token); err != nil {
		return nil, err
	}
	return m.MessMenuValue, nil
}

func (m *MockRemoteAPI) CreateMessMenu(ctx context.Context, token string, menu domain.MessMenu) (*ports.MutationResult, error) {
	if err := m.record("create_mess_menu", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) DeleteMessMenu(ctx context.Context, token, menuID string) (*ports.MutationResult, error) {
	if err := m.record("delete_mess_menu", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) RenewalForms(ctx context.Context, token string) ([]domain.RenewalForm, error) {
	if err := m.record("renewal_forms", token); err != nil {
		return nil, err
	}
	return m.RenewalFormsValue, nil
}

func (m *MockRemoteAPI) CreateRenewalForm(ctx context.Context, token string, in ports.RenewalFormInput) (*ports.MutationResult, error) {
	if err := m.record("create_renewal_form", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) RenewalForm(ctx context.Context, token, formID string) (*domain.RenewalForm, error) {
	if err := m.record("renewal_form", token); err != nil {
		return nil, err
	}
	return m.RenewalFormValue, nil
}

func (m *MockRemoteAPI) UpdateRenewalForm(ctx context.Context, token, formID string, in ports.RenewalFormUpdate) (*ports.MutationResult, error) {
	if err := m.record("update_renewal_form", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) UpdateRenewalFormFiles(ctx context.Context, token, formID string, files map[string]string) (*ports.MutationResult, error) {
	if err := m.record("update_renewal_form_files", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) DeleteRenewalForm(ctx context.Context, token, formID string) (*ports.MutationResult, error) {
	if err := m.record("delete_renewal_form", token); err != nil {
		return nil, err
	}
	return m.mutation(), nil
}

func (m *MockRemoteAPI) UploadFile(ctx context.Context, token, fileType, filename string, content []byte) (*ports.UploadedFile, error) {
	if err := m.record("upload_file", token); err != nil {
		return nil, err
	}
	return m.UploadValue, nil
}

func (m *MockRemoteAPI) DownloadFile(ctx context.Context, token, userID, filename string) ([]byte, error) {
	if err := m.record("download_file", token); err != nil {
		return nil, err
	}
	return m.DownloadValue, nil
}
