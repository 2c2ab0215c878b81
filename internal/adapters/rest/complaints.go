package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) Complaints(ctx context.Context, token string) ([]domain.Complaint, error) {
	var out []domain.Complaint
	if err := c.doJSON(ctx, http.MethodGet, "/api/complaints", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateComplaint(ctx context.Context, token string, in ports.ComplaintInput) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/complaints", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, token, complaintID string, status domain.ComplaintStatus) (*ports.MutationResult, error) {
	path := "/api/complaints/" + url.PathEscape(complaintID) + "/status"
	body := map[string]string{"status": string(status)}
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPut, path, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
