package apiclient

import (
	"context"
	"fmt"

	"github.com/studiozen/yogabook/internal/model"
)

// SessionClient wraps the /session resource collection.
type SessionClient struct {
	c *Client
}

// All retrieves every session.
func (sc *SessionClient) All(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := sc.c.do(ctx, "GET", "/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Detail retrieves one session by id. Returns ErrNotFound when the id
// does not exist server-side.
func (sc *SessionClient) Detail(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	if err := sc.c.do(ctx, "GET", fmt.Sprintf("/session/%d", id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Create posts a new session. The server assigns id and timestamps and
// returns the created resource.
func (sc *SessionClient) Create(ctx context.Context, req *model.SessionRequest) (*model.Session, error) {
	var session model.Session
	if err := sc.c.do(ctx, "POST", "/session", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Update puts the full session body to /session/{id} and returns the
// updated resource.
func (sc *SessionClient) Update(ctx context.Context, id int64, req *model.SessionRequest) (*model.Session, error) {
	var session model.Session
	if err := sc.c.do(ctx, "PUT", fmt.Sprintf("/session/%d", id), req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session.
func (sc *SessionClient) Delete(ctx context.Context, id int64) error {
	return sc.c.do(ctx, "DELETE", fmt.Sprintf("/session/%d", id), nil, nil)
}

// Participate adds userID to the session's participant set. The request
// carries no body and the response no content.
func (sc *SessionClient) Participate(ctx context.Context, sessionID, userID int64) error {
	return sc.c.do(ctx, "POST", fmt.Sprintf("/session/%d/participate/%d", sessionID, userID), nil, nil)
}

// UnParticipate removes userID from the session's participant set.
func (sc *SessionClient) UnParticipate(ctx context.Context, sessionID, userID int64) error {
	return sc.c.do(ctx, "DELETE", fmt.Sprintf("/session/%d/participate/%d", sessionID, userID), nil, nil)
}
