package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/validator"
)

// listSessions handles GET /api/session.
func (s *Server) listSessions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listSessions())
}

// sessionDetail handles GET /api/session/:id.
func (s *Server) sessionDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, found := s.store.sessionByID(id)
	if !found {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, session)
}

// createSession handles POST /api/session. Client-provided ids and
// timestamps are ignored; the store assigns them.
func (s *Server) createSession(c *gin.Context) {
	var req model.SessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		fail(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	c.JSON(http.StatusOK, s.store.createSession(&req))
}

// updateSession handles PUT /api/session/:id with the full session body.
func (s *Server) updateSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.SessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		fail(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	session, found := s.store.updateSession(id, &req)
	if !found {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, session)
}

// deleteSession handles DELETE /api/session/:id.
func (s *Server) deleteSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.store.deleteSession(id) {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Session deleted!"})
}

// participate handles POST /api/session/:id/participate/:userId.
// Joining twice is a 400, unknown session or user a 404.
func (s *Server) participate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if _, found := s.store.userByID(userID); !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	found, added := s.store.addParticipant(sessionID, userID)
	if !found {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	if !added {
		fail(c, http.StatusBadRequest, "Already participating")
		return
	}
	c.Status(http.StatusOK)
}

// unParticipate handles DELETE /api/session/:id/participate/:userId.
// Leaving a session you are not part of is a 400.
func (s *Server) unParticipate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	found, removed := s.store.removeParticipant(sessionID, userID)
	if !found {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	if !removed {
		fail(c, http.StatusBadRequest, "Not participating")
		return
	}
	c.Status(http.StatusOK)
}
