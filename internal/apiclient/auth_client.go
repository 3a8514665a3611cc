package apiclient

import (
	"context"

	"github.com/studiozen/yogabook/internal/model"
)

// AuthClient wraps the /auth endpoints.
type AuthClient struct {
	c *Client
}

// Login exchanges credentials for the session information of the
// authenticated user (token, identity, admin flag).
func (ac *AuthClient) Login(ctx context.Context, req *model.LoginRequest) (*model.SessionInformation, error) {
	var info model.SessionInformation
	if err := ac.c.do(ctx, "POST", "/auth/login", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Register creates a new member account. The server acknowledges with a
// message body; a taken email comes back as ErrBadRequest.
func (ac *AuthClient) Register(ctx context.Context, req *model.RegisterRequest) error {
	return ac.c.do(ctx, "POST", "/auth/register", req, nil)
}
