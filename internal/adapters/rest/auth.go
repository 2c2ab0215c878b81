package rest

import (
	"context"
	"net/http"

	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var out ports.LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	var out ports.LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/register", "", in, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
