package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

// login handles POST /api/auth/login. Bad credentials come back 401.
func (s *Server) login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		fail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	user, hash, ok := s.store.userByEmail(req.Email)
	if !ok {
		fail(c, http.StatusUnauthorized, "Bad credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Bad credentials")
		return
	}

	token, err := s.signToken(user)
	if err != nil {
		s.log.Error().Err(err).Msg("Token signing failed")
		fail(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, model.SessionInformation{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

// register handles POST /api/auth/register. Duplicate emails come back
// 400, matching the real server.
func (s *Server) register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		fail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if _, _, exists := s.store.userByEmail(req.Email); exists {
		fail(c, http.StatusBadRequest, "Error: Email is already taken!")
		return
	}

	if _, err := s.store.createUser(req.Email, req.FirstName, req.LastName, req.Password, false, s.cfg.BcryptCost); err != nil {
		s.log.Error().Err(err).Msg("User creation failed")
		fail(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "User registered successfully!"})
}

func (s *Server) signToken(user *model.User) (string, error) {
	nowT := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(nowT),
		ExpiresAt: jwt.NewNumericDate(nowT.Add(s.cfg.JWTExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// requireAuth validates the bearer token and resolves the account it
// belongs to. Deleted accounts fail closed with 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.MessageResponse{Message: "Unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.MessageResponse{Message: "Unauthorized"})
			return
		}

		user, _, ok := s.store.userByEmail(claims.Subject)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.MessageResponse{Message: "Unauthorized"})
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}
