package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) Payments(ctx context.Context, token string) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := c.doJSON(ctx, http.MethodGet, "/api/payments", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePayment(ctx context.Context, token string, payment domain.Payment) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/payments", token, payment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkPaymentPaid(ctx context.Context, token, paymentID string) (*ports.MutationResult, error) {
	path := "/api/payments/" + url.PathEscape(paymentID) + "/mark-paid"
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPut, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
