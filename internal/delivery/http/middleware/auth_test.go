package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type staticVerifier struct {
	token  string
	userID uuid.UUID
}

func (v staticVerifier) VerifyToken(token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, errors.New("invalid token")
	}
	return v.userID, nil
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", NewAuthMiddleware(verifier).RequireAuth(), func(c *gin.Context) {
		userID := c.MustGet("user_id").(uuid.UUID)
		c.String(http.StatusOK, userID.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	r := newAuthRouter(staticVerifier{token: "good", userID: userID})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}
