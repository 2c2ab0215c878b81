package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
	"github.com/hostelmanager/hostel-access-service/internal/metrics"
)

// AuthService owns the session lifecycle. Login and register never fail on a
// backend outage: when the remote call cannot complete, a demo session is
// synthesized and persisted, and the caller is routed to a dashboard exactly
// as on a real success. The Source return value is the only signal of which
// path ran.
type AuthService struct {
	remote
	store    ports.SessionStore
	api      ports.RemoteAPI
	fallback ports.FallbackProvider
}

func NewAuthService(
	store ports.SessionStore,
	api ports.RemoteAPI,
	fb ports.FallbackProvider,
	cb *gobreaker.CircuitBreaker,
	m *metrics.Metrics,
	log *logrus.Logger,
) *AuthService {
	return &AuthService{
		remote:   remote{cb: cb, metrics: m, log: log},
		store:    store,
		api:      api,
		fallback: fb,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, domain.Source, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domain.NewValidationError("credentials", "email and password are required")
	}

	v, err := s.call("login", func() (interface{}, error) {
		res, err := s.api.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		if res.User == nil || res.Token == "" {
			return nil, &ports.ServerError{StatusCode: 200, Message: "login response missing user or token"}
		}
		return res, nil
	})
	if err != nil {
		// Onboarding never blocks on the backend: a login the server cannot
		// answer becomes a student demo session carrying the entered email.
		return s.demoSession(ctx, "login", err, domain.RoleStudent, email, "", "")
	}

	res := v.(*ports.LoginResult)
	if err := s.store.Save(ctx, res.User, res.Token); err != nil {
		return nil, "", err
	}
	return res.User, domain.SourceServer, nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, domain.Source, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || in.Password == "" {
		return nil, "", domain.NewValidationError("credentials", "email and password are required")
	}
	if in.Name == "" {
		return nil, "", domain.NewValidationError("name", "name is required")
	}
	if in.Role == "" {
		in.Role = domain.RoleStudent
	}

	v, err := s.call("register", func() (interface{}, error) {
		res, err := s.api.Register(ctx, in)
		if err != nil {
			return nil, err
		}
		if res.User == nil || res.Token == "" {
			return nil, &ports.ServerError{StatusCode: 200, Message: "register response missing user or token"}
		}
		return res, nil
	})
	if err != nil {
		return s.demoSession(ctx, "register", err, in.Role, in.Email, in.Name, in.Phone)
	}

	res := v.(*ports.LoginResult)
	if err := s.store.Save(ctx, res.User, res.Token); err != nil {
		return nil, "", err
	}
	return res.User, domain.SourceServer, nil
}

// demoSession synthesizes and persists a fallback session. Caller-entered
// fields overlay the demo user so the session still looks like the person who
// asked for it.
func (s *AuthService) demoSession(ctx context.Context, operation string, cause error, role domain.Role, email, name, phone string) (*domain.User, domain.Source, error) {
	s.fellBack(operation, cause)

	user := s.fallback.User(role)
	user.Email = email
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}

	if err := s.store.Save(ctx, user, s.fallback.Token()); err != nil {
		return nil, "", err
	}
	return user, domain.SourceFallback, nil
}

// Logout clears the session unconditionally. No network call is made.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.store.User(ctx)
}

func (s *AuthService) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.store.IsLoggedIn(ctx)
}

// Dashboard resolves the routing target for the stored session.
func (s *AuthService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	user, err := s.store.User(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.NewValidationError("session", "not logged in")
	}
	return user.Role.Dashboard(), nil
}

// TokenExpired inspects a stored token's exp claim without verifying its
// signature. Opaque tokens report false; expiry is ultimately the server's
// call.
func TokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
