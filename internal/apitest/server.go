// Package apitest provides an in-memory double of the booking REST API.
//
// It serves the exact wire shapes of the real server (raw resource JSON,
// numeric auto-increment ids, server-side timestamps) so clients and
// view-models can be tested hermetically. It is test infrastructure,
// not a production server: state lives in process memory and is seeded
// per test.
package apitest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studiozen/yogabook/internal/config"
	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/validator"
)

const contextKeyUser = "authUser"

// Server is one double instance with its own isolated state.
type Server struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *memStore
	engine *gin.Engine
}

// NewServer builds a double with empty state. Routes and auth semantics
// mirror the real API: /api/auth/* is public, everything else requires a
// bearer token.
func NewServer(cfg *config.Config, log zerolog.Logger) *Server {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	s := &Server{
		cfg:   cfg,
		log:   log,
		store: newMemStore(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	api := engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.login)
			auth.POST("/register", s.register)
		}

		authed := api.Group("")
		authed.Use(s.requireAuth())
		{
			authed.GET("/session", s.listSessions)
			authed.GET("/session/:id", s.sessionDetail)
			authed.POST("/session", s.createSession)
			authed.PUT("/session/:id", s.updateSession)
			authed.DELETE("/session/:id", s.deleteSession)
			authed.POST("/session/:id/participate/:userId", s.participate)
			authed.DELETE("/session/:id/participate/:userId", s.unParticipate)

			authed.GET("/teacher", s.listTeachers)
			authed.GET("/teacher/:id", s.teacherDetail)

			authed.GET("/user/:id", s.userDetail)
			authed.DELETE("/user/:id", s.deleteUser)
		}
	}

	s.engine = engine
	return s
}

// Handler exposes the double as an http.Handler, ready for
// httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ─── Seeding ───────────────────────────────────────────────────────────

// SeedUser creates an account directly in the store, bypassing the
// register endpoint so tests can seed admins.
func (s *Server) SeedUser(email, firstName, lastName, password string, admin bool) *model.User {
	user, err := s.store.createUser(email, firstName, lastName, password, admin, s.cfg.BcryptCost)
	if err != nil {
		panic("apitest: seed user: " + err.Error())
	}
	return user
}

// SeedTeacher creates a teacher directly in the store.
func (s *Server) SeedTeacher(firstName, lastName string) *model.Teacher {
	return s.store.createTeacher(firstName, lastName)
}

// SeedSession creates a session directly in the store with the given
// participants.
func (s *Server) SeedSession(req *model.SessionRequest, participants ...int64) *model.Session {
	session := s.store.createSession(req)
	for _, id := range participants {
		s.store.addParticipant(session.ID, id)
	}
	return session
}

// ─── Helpers ───────────────────────────────────────────────────────────

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, model.MessageResponse{Message: message})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func authUser(c *gin.Context) *model.User {
	v, _ := c.Get(contextKeyUser)
	user, _ := v.(*model.User)
	return user
}
