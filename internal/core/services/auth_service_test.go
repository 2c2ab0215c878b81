package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func TestLoginSucceedsAgainstUnreachableBackend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Err = errors.New("dial tcp: connection refused")

	user, source, err := f.auth.Login(ctx, "someone@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if source != domain.SourceFallback {
		t.Errorf("source = %q, want fallback", source)
	}
	if user.Email != "someone@example.com" {
		t.Errorf("caller email not overlaid: %q", user.Email)
	}
	if user.Role != domain.RoleStudent {
		t.Errorf("login fallback role = %q, want student", user.Role)
	}

	loggedIn, err := f.store.IsLoggedIn(ctx)
	if err != nil {
		t.Fatalf("IsLoggedIn: %v", err)
	}
	if !loggedIn {
		t.Error("fallback login must leave the session active")
	}
	token, _ := f.store.Token(ctx)
	if token == "" {
		t.Error("fallback login must persist a token")
	}
}

func TestLoginSuccessNeverConsultsFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	serverUser := &domain.User{ID: "u-77", Email: "real@hostel.com", Name: "Real User", Role: domain.RoleStudent}
	f.api.LoginValue = &ports.LoginResult{Message: "Login successful", Token: "srv-token", User: serverUser}

	user, source, err := f.auth.Login(ctx, "real@hostel.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if source != domain.SourceServer {
		t.Errorf("source = %q, want server", source)
	}
	if user.ID != "u-77" {
		t.Errorf("server user not returned unmodified: %+v", user)
	}
	if f.fb.TotalCalls() != 0 {
		t.Errorf("fallback consulted %d times on a healthy backend", f.fb.TotalCalls())
	}

	stored, _ := f.store.User(ctx)
	if stored == nil || stored.ID != "u-77" {
		t.Errorf("store holds %+v, want the server user", stored)
	}
	token, _ := f.store.Token(ctx)
	if token != "srv-token" {
		t.Errorf("store holds token %q, want srv-token", token)
	}
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, _, err := f.auth.Login(ctx, "", "secret")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if f.api.CallCount("login") != 0 {
		t.Error("validation failures must not reach the remote client")
	}
	if f.fb.TotalCalls() != 0 {
		t.Error("validation failures must not trigger fallback")
	}
}

func TestServerRejectionAlsoBecomesDemoSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Err = &ports.ServerError{StatusCode: 401, Message: "invalid credentials"}

	_, source, err := f.auth.Login(ctx, "someone@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if source != domain.SourceFallback {
		t.Errorf("source = %q, want fallback", source)
	}
}

func TestRegisterOfflineAdminRoutesToAdminDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Err = errors.New("no route to host")

	user, source, err := f.auth.Register(ctx, ports.RegisterInput{
		Email:    "a@b.com",
		Password: "secret",
		Name:     "Ada Admin",
		Phone:    "555-0000",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if source != domain.SourceFallback {
		t.Errorf("source = %q, want fallback", source)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", user.Role)
	}
	if user.Email != "a@b.com" || user.Name != "Ada Admin" || user.Phone != "555-0000" {
		t.Errorf("caller fields not overlaid: %+v", user)
	}

	dashboard, err := f.auth.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard != domain.DashboardAdmin {
		t.Errorf("dashboard = %q, want admin", dashboard)
	}
}

func TestFallbackSessionsDistinguishable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Err = errors.New("timeout")

	first, _, err := f.auth.Login(ctx, "a@b.com", "x")
	if err != nil {
		t.Fatalf("first Login: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, _, err := f.auth.Login(ctx, "a@b.com", "x")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("two fallback sessions share identifier %q", first.ID)
	}
}

func TestLogoutClearsEverythingAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Err = errors.New("offline")

	if _, _, err := f.auth.Login(ctx, "a@b.com", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := f.auth.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	loggedIn, _ := f.auth.IsLoggedIn(ctx)
	if loggedIn {
		t.Error("still logged in after Logout")
	}
	user, _ := f.auth.CurrentUser(ctx)
	if user != nil {
		t.Errorf("user still stored after Logout: %+v", user)
	}

	if err := f.auth.Logout(ctx); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	if f.api.CallCount("login") != 1 {
		t.Errorf("logout must not touch the network, calls: %v", f.api.Calls)
	}
}

func TestTokenExpired(t *testing.T) {
	expired := mintToken(t, time.Now().Add(-time.Hour))
	if !TokenExpired(expired) {
		t.Error("expired token should report expired")
	}

	fresh := mintToken(t, time.Now().Add(time.Hour))
	if TokenExpired(fresh) {
		t.Error("fresh token should not report expired")
	}

	if TokenExpired("opaque-session-token") {
		t.Error("opaque tokens cannot be judged client-side")
	}
}

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}
