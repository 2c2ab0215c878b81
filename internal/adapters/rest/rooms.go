package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) Rooms(ctx context.Context, token string) ([]domain.Room, error) {
	var out []domain.Room
	if err := c.doJSON(ctx, http.MethodGet, "/api/rooms", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// myRoomResponse is the envelope around /api/my-room; room is null when the
// student has no assignment.
type myRoomResponse struct {
	Message string       `json:"message,omitempty"`
	Room    *domain.Room `json:"room"`
}

func (c *Client) MyRoom(ctx context.Context, token string) (*domain.Room, error) {
	var out myRoomResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/my-room", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Room, nil
}

func (c *Client) CreateRoom(ctx context.Context, token string, room domain.Room) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/rooms", token, room, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignRoom(ctx context.Context, token, roomNumber, studentID string) (*ports.MutationResult, error) {
	path := fmt.Sprintf("/api/rooms/%s/assign/%s", url.PathEscape(roomNumber), url.PathEscape(studentID))
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPut, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
