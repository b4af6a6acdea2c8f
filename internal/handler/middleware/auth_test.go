//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"bookingpay/internal/handler/middleware"
	"bookingpay/internal/pkg/jwt"
	"bookingpay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	auth := middleware.NewAuthMiddleware(s.jwtService)

	s.router.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		actorID, _ := middleware.GetActorID(c)
		role, _ := middleware.GetActorRole(c)
		c.JSON(http.StatusOK, gin.H{"actor_id": actorID.String(), "role": role})
	})
	s.router.GET("/admin-only", auth.RequireAuth(), auth.RequireRole(middleware.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	s.router.GET("/internal", auth.RequireAuth(), auth.RequireRole(middleware.RoleAdmin, middleware.RoleService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(role string) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), role)
	require.NoError(s.T(), err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("valid token exposes actor to handlers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, s.token(middleware.RoleAdmin))

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(middleware.RoleAdmin, body["role"])
		s.NotEmpty(body["actor_id"])
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("expired token", func() {
		expired := jwt.NewService("test-secret", -time.Hour)
		token, err := expired.GenerateToken(uuid.New(), middleware.RoleAdmin)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token signed with another secret", func() {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), middleware.RoleAdmin)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("admin passes admin gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin-only", nil, s.token(middleware.RoleAdmin))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("service role rejected by admin gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin-only", nil, s.token(middleware.RoleService))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("either role passes the internal gate", func() {
		for _, role := range []string{middleware.RoleAdmin, middleware.RoleService} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/internal", nil, s.token(role))
			s.Equal(http.StatusOK, rec.Code, "role %s", role)
		}
	})
}
