package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

func (c *Client) RenewalForms(ctx context.Context, token string) ([]domain.RenewalForm, error) {
	var out []domain.RenewalForm
	if err := c.doJSON(ctx, http.MethodGet, "/api/renewal-forms", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRenewalForm(ctx context.Context, token string, in ports.RenewalFormInput) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/renewal-forms", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RenewalForm(ctx context.Context, token, formID string) (*domain.RenewalForm, error) {
	var out domain.RenewalForm
	if err := c.doJSON(ctx, http.MethodGet, "/api/renewal-forms/"+url.PathEscape(formID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRenewalForm(ctx context.Context, token, formID string, in ports.RenewalFormUpdate) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPut, "/api/renewal-forms/"+url.PathEscape(formID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRenewalFormFiles(ctx context.Context, token, formID string, files map[string]string) (*ports.MutationResult, error) {
	path := "/api/renewal-forms/" + url.PathEscape(formID) + "/files"
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodPut, path, token, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRenewalForm(ctx context.Context, token, formID string) (*ports.MutationResult, error) {
	var out ports.MutationResult
	if err := c.doJSON(ctx, http.MethodDelete, "/api/renewal-forms/"+url.PathEscape(formID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
