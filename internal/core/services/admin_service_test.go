package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func loginAdmin(t *testing.T, f *fixture) {
	t.Helper()
	admin := &domain.User{ID: "admin-1", Email: "admin@hostel.com", Name: "Admin", Role: domain.RoleAdmin}
	if err := f.store.Save(context.Background(), admin, "admin-tok"); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
}

func TestStudentsFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)
	f.api.Err = errors.New("offline")

	students, source, err := f.admin.Students(ctx)
	if err != nil {
		t.Fatalf("Students: %v", err)
	}
	if source != domain.SourceFallback {
		t.Errorf("source = %q, want fallback", source)
	}
	if len(students) == 0 {
		t.Error("fallback students list empty")
	}
}

func TestUpdateComplaintStatusRejectsBackwardMove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)

	_, err := f.admin.UpdateComplaintStatus(ctx, "comp-1", domain.ComplaintResolved, domain.ComplaintPending)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if f.api.CallCount("update_complaint_status") != 0 {
		t.Error("rejected transition must not reach the remote client")
	}
}

func TestUpdateComplaintStatusForwardMovePassesThrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)
	f.api.MutationValue = &ports.MutationResult{Message: "Complaint status updated", Success: true}

	res, err := f.admin.UpdateComplaintStatus(ctx, "comp-1", domain.ComplaintPending, domain.ComplaintInProgress)
	if err != nil {
		t.Fatalf("UpdateComplaintStatus: %v", err)
	}
	if !res.Success {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(f.api.Tokens) == 0 || f.api.Tokens[0] != "admin-tok" {
		t.Errorf("admin token not attached, saw %v", f.api.Tokens)
	}
}

func TestUpdateRenewalFormTerminalStates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)

	_, err := f.admin.UpdateRenewalForm(ctx, "renewal-1", domain.RenewalApproved, ports.RenewalFormUpdate{Status: domain.RenewalRejected})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("approved forms are final, got %v", err)
	}

	// A comments-only update carries no transition and is always legal.
	if _, err := f.admin.UpdateRenewalForm(ctx, "renewal-1", domain.RenewalApproved, ports.RenewalFormUpdate{AdminComments: "archived"}); err != nil {
		t.Errorf("comments-only update rejected: %v", err)
	}
}

func TestAdminMutationFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)
	f.api.Err = &ports.ServerError{StatusCode: 404, Message: "Student not found"}

	_, err := f.admin.DeleteStudent(ctx, "student-99")
	if !ports.IsServerError(err) {
		t.Fatalf("expected server error, got %v", err)
	}
	if f.fb.TotalCalls() != 0 {
		t.Error("fallback must not run for admin mutations")
	}
}

func TestCreateRoomValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loginAdmin(t, f)

	_, err := f.admin.CreateRoom(ctx, domain.Room{RoomNumber: "", Capacity: 2})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	_, err = f.admin.CreateRoom(ctx, domain.Room{RoomNumber: "D401", Capacity: 0})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for zero capacity, got %v", err)
	}
	if f.api.CallCount("create_room") != 0 {
		t.Error("invalid rooms must not reach the remote client")
	}
}
