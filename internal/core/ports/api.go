package ports

import (
	"context"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
)

// LoginResult is the server's answer to login and register.
type LoginResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// MutationResult is the generic answer to write operations.
type MutationResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type RegisterInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

type ComplaintInput struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    domain.ComplaintCategory `json:"category"`
}

type RenewalFormInput struct {
	Files map[string]string `json:"files"`
}

type RenewalFormUpdate struct {
	Status        domain.RenewalStatus `json:"status,omitempty"`
	AdminComments string               `json:"admin_comments,omitempty"`
}

// UploadedFile describes a stored document after a successful upload.
type UploadedFile struct {
	Message  string `json:"message"`
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
	FilePath string `json:"file_path"`
}

// RemoteAPI is the typed binding to the hostel backend's REST surface.
// The client holds no session state: every authenticated operation takes the
// bearer token from the caller. Implementations bound each call with fixed
// connect/read/write timeouts and perform no retries.
type RemoteAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)

	Rooms(ctx context.Context, token string) ([]domain.Room, error)
	MyRoom(ctx context.Context, token string) (*domain.Room, error)
	CreateRoom(ctx context.Context, token string, room domain.Room) (*MutationResult, error)
	AssignRoom(ctx context.Context, token, roomNumber, studentID string) (*MutationResult, error)

	Students(ctx context.Context, token string) ([]domain.User, error)
	DeleteStudent(ctx context.Context, token, studentID string) (*MutationResult, error)

	Complaints(ctx context.Context, token string) ([]domain.Complaint, error)
	CreateComplaint(ctx context.Context, token string, in ComplaintInput) (*MutationResult, error)
	UpdateComplaintStatus(ctx context.Context, token, complaintID string, status domain.ComplaintStatus) (*MutationResult, error)

	Payments(ctx context.Context, token string) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, token string, payment domain.Payment) (*MutationResult, error)
	MarkPaymentPaid(ctx context.Context, token, paymentID string) (*MutationResult, error)

	MessMenu(ctx context.Context, token string) ([]domain.MessMenu, error)
	CreateMessMenu(ctx context.Context, token string, menu domain.MessMenu) (*MutationResult, error)
	DeleteMessMenu(ctx context.Context, token, menuID string) (*MutationResult, error)

	RenewalForms(ctx context.Context, token string) ([]domain.RenewalForm, error)
	CreateRenewalForm(ctx context.Context, token string, in RenewalFormInput) (*MutationResult, error)
	RenewalForm(ctx context.Context, token, formID string) (*domain.RenewalForm, error)
	UpdateRenewalForm(ctx context.Context, token, formID string, in RenewalFormUpdate) (*MutationResult, error)
	UpdateRenewalFormFiles(ctx context.Context, token, formID string, files map[string]string) (*MutationResult, error)
	DeleteRenewalForm(ctx context.Context, token, formID string) (*MutationResult, error)

	UploadFile(ctx context.Context, token, fileType, filename string, content []byte) (*UploadedFile, error)
	DownloadFile(ctx context.Context, token, userID, filename string) ([]byte, error)
}
