package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listTeachers handles GET /api/teacher.
func (s *Server) listTeachers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listTeachers())
}

// teacherDetail handles GET /api/teacher/:id.
func (s *Server) teacherDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	teacher, found := s.store.teacherByID(id)
	if !found {
		fail(c, http.StatusNotFound, "Teacher not found")
		return
	}
	c.JSON(http.StatusOK, teacher)
}
