package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hostelmanager/hostel-access-service/internal/config"
	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.Config{
		BaseURL:        srv.URL,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	})
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Room{})
	}))

	if _, err := client.Rooms(context.Background(), "tok-123"); err != nil {
		t.Fatalf("Rooms: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestLoginPostsCredentialsAndDecodes(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "pw" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(ports.LoginResult{
			Message: "Login successful",
			Token:   "srv-token",
			User:    &domain.User{ID: "u-1", Email: "a@b.com", Role: domain.RoleStudent},
		})
	}))

	res, err := client.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "srv-token" || res.User == nil || res.User.ID != "u-1" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestStructuredErrorBecomesServerError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), "a@b.com", "bad")
	var se *ports.ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Message != "Invalid credentials" {
		t.Errorf("unexpected server error: %+v", se)
	}
}

func TestUnparseableErrorIsTransportClass(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := client.Rooms(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	if ports.IsServerError(err) {
		t.Errorf("unstructured body must not produce ServerError: %v", err)
	}
}

func TestMyRoomEnvelopeWithNullRoom(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"message": "No room assigned", "room": nil})
	}))

	room, err := client.MyRoom(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MyRoom: %v", err)
	}
	if room != nil {
		t.Errorf("expected nil room, got %+v", room)
	}
}

func TestMyRoomEnvelopeDecodesRoom(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"room": domain.Room{
			RoomNumber: "A101",
			Capacity:   2,
			Occupied:   1,
			RoomType:   domain.RoomDouble,
			Floor:      "1",
			Status:     domain.RoomAvailable,
			Roommates:  []domain.User{{Name: "John Doe"}},
		}})
	}))

	room, err := client.MyRoom(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MyRoom: %v", err)
	}
	if room == nil || room.RoomNumber != "A101" || len(room.Roommates) != 1 {
		t.Errorf("unexpected room: %+v", room)
	}
}

func TestAssignRoomBuildsPath(t *testing.T) {
	var gotPath, gotMethod string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(ports.MutationResult{Message: "assigned", Success: true})
	}))

	if _, err := client.AssignRoom(context.Background(), "tok", "A101", "student-1"); err != nil {
		t.Fatalf("AssignRoom: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/rooms/A101/assign/student-1" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestUploadFileMultipart(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart: %v", err)
		}
		if got := r.FormValue("file_type"); got != "aadhar" {
			t.Errorf("file_type = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "scan.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(ports.UploadedFile{
			Message:  "File uploaded successfully",
			FileID:   "f-1",
			Filename: "aadhar_f-1.pdf",
			FileType: "aadhar",
		})
	}))

	res, err := client.UploadFile(context.Background(), "tok", "aadhar", "scan.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if res.Filename != "aadhar_f-1.pdf" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDownloadFileReturnsBytes(t *testing.T) {
	payload := []byte("binary-content")
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/download-file/student-1/aadhar_f-1.pdf" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write(payload)
	}))

	got, err := client.DownloadFile(context.Background(), "tok", "student-1", "aadhar_f-1.pdf")
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %q", got)
	}
}

func TestTransportFailureIsNotServerError(t *testing.T) {
	// Point at a closed port.
	client := New(&config.Config{
		BaseURL:        "http://127.0.0.1:1",
		ConnectTimeout: 500 * time.Millisecond,
		ReadTimeout:    500 * time.Millisecond,
		WriteTimeout:   500 * time.Millisecond,
	})

	_, err := client.Rooms(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected transport failure")
	}
	if ports.IsServerError(err) {
		t.Errorf("connection refused must be transport-class: %v", err)
	}
}
