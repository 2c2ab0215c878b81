package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) Students(ctx context.Context, token string) ([]domain.User, error) {
	var out []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/students", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteStudent(ctx context.Context, token, studentID string) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodDelete, "/api/students/"+url.PathEscape(studentID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
