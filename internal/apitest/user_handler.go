package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiozen/yogabook/internal/model"
)

// userDetail handles GET /api/user/:id. The password hash never leaves
// the store.
func (s *Server) userDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, found := s.store.userByID(id)
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// deleteUser handles DELETE /api/user/:id. Accounts can only delete
// themselves; anything else is a 401, matching the real server.
func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, found := s.store.userByID(id); !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if caller := authUser(c); caller == nil || caller.ID != id {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !s.store.deleteUser(id) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Account deleted!"})
}
