package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiozen/yogabook/internal/model"
)

// recordingServer captures the last request and replies with a canned
// status and body.
type recordingServer struct {
	ts     *httptest.Server
	method string
	path   string
	body   []byte
	header http.Header

	status   int
	response interface{}
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{status: http.StatusOK}
	rs.ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.header = r.Header.Clone()
		rs.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rs.status)
		if rs.response != nil {
			_ = json.NewEncoder(w).Encode(rs.response)
		}
	}))
	t.Cleanup(rs.ts.Close)
	return rs
}

func (rs *recordingServer) client() *Client {
	return New(rs.ts.URL+"/api", 5*time.Second, nil, zerolog.Nop())
}

func sampleSession(id int64) model.Session {
	return model.Session{
		ID:          id,
		Name:        "Session name",
		Date:        "2024-09-19",
		TeacherID:   1,
		Description: "Session description",
		Users:       []int64{1, 2, 3},
	}
}

func TestSessionClient_All(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = []model.Session{sampleSession(1), sampleSession(2)}

	sessions, err := rs.client().Sessions().All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "GET", rs.method)
	assert.Equal(t, "/api/session", rs.path)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(1), sessions[0].ID)
	assert.Equal(t, int64(2), sessions[1].ID)
}

func TestSessionClient_Detail(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = sampleSession(1)

	session, err := rs.client().Sessions().Detail(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "GET", rs.method)
	assert.Equal(t, "/api/session/1", rs.path)
	assert.Equal(t, "Session name", session.Name)
	assert.Equal(t, []int64{1, 2, 3}, session.Users)
}

func TestSessionClient_Create(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = sampleSession(1)

	req := &model.SessionRequest{
		Name:        "My session",
		Date:        "2024-08-19",
		TeacherID:   1,
		Description: "The description of my session",
	}
	_, err := rs.client().Sessions().Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "POST", rs.method)
	assert.Equal(t, "/api/session", rs.path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rs.body, &sent))
	assert.Equal(t, map[string]interface{}{
		"name":        "My session",
		"date":        "2024-08-19",
		"teacher_id":  float64(1),
		"description": "The description of my session",
	}, sent)
}

// TestSessionClient_Update checks that the PUT body is exactly the four
// form fields, nothing more.
func TestSessionClient_Update(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = sampleSession(1)

	req := &model.SessionRequest{
		Name:        "Session 1",
		Date:        "2024-09-19",
		TeacherID:   1,
		Description: "The updated description",
	}
	_, err := rs.client().Sessions().Update(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, "PUT", rs.method)
	assert.Equal(t, "/api/session/1", rs.path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rs.body, &sent))
	assert.Equal(t, map[string]interface{}{
		"name":        "Session 1",
		"date":        "2024-09-19",
		"teacher_id":  float64(1),
		"description": "The updated description",
	}, sent)
}

func TestSessionClient_Delete(t *testing.T) {
	rs := newRecordingServer(t)

	err := rs.client().Sessions().Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "DELETE", rs.method)
	assert.Equal(t, "/api/session/1", rs.path)
}

func TestSessionClient_Participate(t *testing.T) {
	rs := newRecordingServer(t)

	err := rs.client().Sessions().Participate(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "POST", rs.method)
	assert.Equal(t, "/api/session/1/participate/1", rs.path)
	assert.Empty(t, rs.body)
}

func TestSessionClient_UnParticipate(t *testing.T) {
	rs := newRecordingServer(t)

	err := rs.client().Sessions().UnParticipate(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "DELETE", rs.method)
	assert.Equal(t, "/api/session/1/participate/1", rs.path)
	assert.Empty(t, rs.body)
}

func TestTeacherClient(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = []model.Teacher{{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"}}

	teachers, err := rs.client().Teachers().All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/teacher", rs.path)
	require.Len(t, teachers, 1)

	rs.response = model.Teacher{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"}
	teacher, err := rs.client().Teachers().Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/api/teacher/1", rs.path)
	assert.Equal(t, "Margot", teacher.FirstName)
}

func TestUserClient_DeleteEncodesIDInPath(t *testing.T) {
	rs := newRecordingServer(t)

	err := rs.client().Users().Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "DELETE", rs.method)
	assert.Equal(t, "/api/user/1", rs.path)
}
