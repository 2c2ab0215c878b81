package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) MessMenu(ctx context.Context, token string) ([]domain.MessMenu, error) {
	var out []domain.MessMenu
	if err := c.doJSON(ctx, http.MethodGet, "/api/mess-menu", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMessMenu(ctx context.Context, token string, menu domain.MessMenu) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/mess-menu", token, menu, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMessMenu(ctx context.Context, token, menuID string) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodDelete, "/api/mess-menu/"+url.PathEscape(menuID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
