package apiclient

import (
	"context"
	"strconv"

	"github.com/studiozen/yogabook/internal/model"
)

// UserClient wraps the /user resource collection.
type UserClient struct {
	c *Client
}

// GetByID retrieves one user by id. Returns ErrNotFound on unknown id.
func (uc *UserClient) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := uc.c.do(ctx, "GET", "/user/"+strconv.FormatInt(id, 10), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user account. Ids are canonically int64 in process;
// the string encoding happens here at the URL boundary.
func (uc *UserClient) Delete(ctx context.Context, id int64) error {
	return uc.c.do(ctx, "DELETE", "/user/"+strconv.FormatInt(id, 10), nil, nil)
}
