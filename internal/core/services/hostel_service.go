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

// HostelService is the student-facing access layer. Reads degrade to the
// fallback dataset when the backend is unavailable; writes never do — a
// failed mutation is reported, not faked.
type HostelService struct {
	remote
	store    ports.SessionStore
	api      ports.RemoteAPI
	fallback ports.FallbackProvider
}

func NewHostelService(
	store ports.SessionStore,
	api ports.RemoteAPI,
	fb ports.FallbackProvider,
	cb *gobreaker.CircuitBreaker,
	m *metrics.Metrics,
	log *logrus.Logger,
) *HostelService {
	return &HostelService{
		remote:   remote{cb: cb, metrics: m, log: log},
		store:    store,
		api:      api,
		fallback: fb,
	}
}

// token is read from the store immediately before each request is built.
func (s *HostelService) token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

func (s *HostelService) MyRoom(ctx context.Context) (*domain.Room, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("my_room", func() (interface{}, error) {
		return s.api.MyRoom(ctx, token)
	})
	if err != nil {
		s.fellBack("my_room", err)
		return s.fallback.Room(), domain.SourceFallback, nil
	}
	return v.(*domain.Room), domain.SourceServer, nil
}

func (s *HostelService) Rooms(ctx context.Context) ([]domain.Room, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("rooms", func() (interface{}, error) {
		return s.api.Rooms(ctx, token)
	})
	if err != nil {
		s.fellBack("rooms", err)
		return s.fallback.Rooms(), domain.SourceFallback, nil
	}
	return v.([]domain.Room), domain.SourceServer, nil
}

func (s *HostelService) Complaints(ctx context.Context) ([]domain.Complaint, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("complaints", func() (interface{}, error) {
		return s.api.Complaints(ctx, token)
	})
	if err != nil {
		s.fellBack("complaints", err)
		return s.fallback.Complaints(), domain.SourceFallback, nil
	}
	return v.([]domain.Complaint), domain.SourceServer, nil
}

func (s *HostelService) Payments(ctx context.Context) ([]domain.Payment, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("payments", func() (interface{}, error) {
		return s.api.Payments(ctx, token)
	})
	if err != nil {
		s.fellBack("payments", err)
		return s.fallback.Payments(), domain.SourceFallback, nil
	}
	return v.([]domain.Payment), domain.SourceServer, nil
}

func (s *HostelService) MessMenu(ctx context.Context) ([]domain.MessMenu, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("mess_menu", func() (interface{}, error) {
		return s.api.MessMenu(ctx, token)
	})
	if err != nil {
		s.fellBack("mess_menu", err)
		return s.fallback.MessMenu(), domain.SourceFallback, nil
	}
	return v.([]domain.MessMenu), domain.SourceServer, nil
}

func (s *HostelService) RenewalForms(ctx context.Context) ([]domain.RenewalForm, domain.Source, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("renewal_forms", func() (interface{}, error) {
		return s.api.RenewalForms(ctx, token)
	})
	if err != nil {
		s.fellBack("renewal_forms", err)
		return s.fallback.RenewalForms(), domain.SourceFallback, nil
	}
	return v.([]domain.RenewalForm), domain.SourceServer, nil
}

func (s *HostelService) RenewalForm(ctx context.Context, formID string) (*domain.RenewalForm, domain.Source, error) {
	if formID == "" {
		return nil, "", domain.NewValidationError("form_id", "form id is required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, "", err
	}
	v, err := s.call("renewal_form", func() (interface{}, error) {
		return s.api.RenewalForm(ctx, token, formID)
	})
	if err != nil {
		s.fellBack("renewal_form", err)
		forms := s.fallback.RenewalForms()
		form := forms[0]
		form.ID = formID
		return &form, domain.SourceFallback, nil
	}
	return v.(*domain.RenewalForm), domain.SourceServer, nil
}

// CreateComplaint files a complaint. Remote failures surface; nothing is
// fabricated for writes.
func (s *HostelService) CreateComplaint(ctx context.Context, in ports.ComplaintInput) (*ports.MutationResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Description == "" {
		return nil, domain.NewValidationError("complaint", "title and description are required")
	}
	if in.Category == "" {
		in.Category = domain.ComplaintOther
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("create_complaint", func() (interface{}, error) {
		return s.api.CreateComplaint(ctx, token, in)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

func (s *HostelService) CreateRenewalForm(ctx context.Context, files map[string]string) (*ports.MutationResult, error) {
	for kind := range files {
		if !domain.ValidDocumentKind(kind) {
			return nil, domain.NewValidationError("files", "unknown document kind: "+kind)
		}
	}
	if files == nil {
		files = map[string]string{}
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("create_renewal_form", func() (interface{}, error) {
		return s.api.CreateRenewalForm(ctx, token, ports.RenewalFormInput{Files: files})
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.MutationResult), nil
}

// UploadDocument validates kind, extension and size locally, mirroring the
// server's checks, so bad uploads never cost a network round trip.
func (s *HostelService) UploadDocument(ctx context.Context, kind, filename string, content []byte) (*ports.UploadedFile, error) {
	if !domain.ValidDocumentKind(kind) {
		return nil, domain.NewValidationError("file_type", "unknown document kind: "+kind)
	}
	if !domain.ValidDocumentExtension(filename) {
		return nil, domain.NewValidationError("file", "only JPG, PNG and PDF files are allowed")
	}
	if len(content) > domain.MaxDocumentSize {
		return nil, domain.NewValidationError("file", "file size too large (max 5MB)")
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("upload_file", func() (interface{}, error) {
		return s.api.UploadFile(ctx, token, kind, filename, content)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.UploadedFile), nil
}

func (s *HostelService) DownloadDocument(ctx context.Context, userID, filename string) ([]byte, error) {
	if userID == "" || filename == "" {
		return nil, domain.NewValidationError("file", "user id and filename are required")
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.call("download_file", func() (interface{}, error) {
		return s.api.DownloadFile(ctx, token, userID, filename)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
