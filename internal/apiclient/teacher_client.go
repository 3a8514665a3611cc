package apiclient

import (
	"context"
	"fmt"

	"github.com/studiozen/yogabook/internal/model"
)

// TeacherClient wraps the /teacher resource collection.
type TeacherClient struct {
	c *Client
}

// All retrieves every teacher.
func (tc *TeacherClient) All(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := tc.c.do(ctx, "GET", "/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Detail retrieves one teacher by id. Returns ErrNotFound on unknown id.
func (tc *TeacherClient) Detail(ctx context.Context, id int64) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := tc.c.do(ctx, "GET", fmt.Sprintf("/teacher/%d", id), nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}
