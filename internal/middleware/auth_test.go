package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/service"
)

// stubAuthService only implements token validation; every other method
// is unused by the middleware.
type stubAuthService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubAuthService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	if tokenString == s.validToken {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*service.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuthService) GenerateTokens(userID string) (*service.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthService) RefreshAccessToken(refreshToken string) (*service.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID string, name, email, avatar *string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return nil
}

func (s *stubAuthService) DeleteAccount(ctx context.Context, userID, password string) error {
	return nil
}

func newAuthTestRouter(middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return router
}

func newStubAuth() *stubAuthService {
	return &stubAuthService{
		validToken: "good-token",
		claims:     &service.Claims{UserID: "u1", Email: "jane@example.com"},
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized},
	}

	router := newAuthTestRouter(AuthMiddleware(newStubAuth()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"userID":"u1"`)
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newAuthTestRouter(OptionalAuthMiddleware(newStubAuth()))

	// Anonymous requests pass through with an empty user id.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":""`)

	// Invalid tokens are ignored rather than rejected.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Valid tokens attach the user.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":"u1"`)
}
