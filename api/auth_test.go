package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
	}{
		{
			name: "Valid default credentials",
			requestBody: map[string]string{
				"username": "admin",
				"password": "admin123",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			requestBody: map[string]string{
				"username": "admin",
				"password": "nope",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong username",
			requestBody: map[string]string{
				"username": "root",
				"password": "admin123",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Empty body",
			requestBody:    map[string]string{},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/api/login", "", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, resp.Code)

			if tt.expectedStatus == http.StatusOK {
				body := decodeJSON[map[string]string](t, resp)
				assert.NotEmpty(t, body["token"])
			}
		})
	}
}

func TestLoginWithConfiguredCredentials(t *testing.T) {
	router := setupTestRouter(t, map[string]string{
		"ADMIN_USER": "editor",
		"ADMIN_PASS": "s3cret",
	})

	resp := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"username": "editor",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	// The default pair no longer works once credentials are configured.
	resp = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLoginWithHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	router := setupTestRouter(t, map[string]string{
		"ADMIN_PASS_HASH": string(hash),
	})

	resp := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	// The plain ADMIN_PASS default is ignored when a hash is configured.
	resp = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogout(t *testing.T) {
	router := setupTestRouter(t, nil)
	token := loginToken(t, router)

	resp := doJSON(t, router, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeJSON[map[string]bool](t, resp)
	assert.True(t, body["success"])

	// Tokens are stateless: the credential still verifies after logout.
	resp = doJSON(t, router, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

// expiredToken signs a well-formed token whose expiry is already past
func expiredToken(t *testing.T) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthBoundary(t *testing.T) {
	router := setupTestRouter(t, nil)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/logout"},
		{http.MethodPut, "/api/site-content"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/upload"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodGet, "/api/analytics"},
	}

	tokens := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "not-a-real-token"},
		{"expired token", expiredToken(t)},
	}

	for _, endpoint := range endpoints {
		for _, tc := range tokens {
			t.Run(endpoint.method+" "+endpoint.path+" with "+tc.name, func(t *testing.T) {
				resp := doJSON(t, router, endpoint.method, endpoint.path, tc.token, map[string]string{})
				assert.Equal(t, http.StatusUnauthorized, resp.Code)
			})
		}
	}
}

func TestBearerPrefixTolerated(t *testing.T) {
	router := setupTestRouter(t, nil)
	token := loginToken(t, router)

	resp := doJSON(t, router, http.MethodPost, "/api/logout", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthorityIssueVerify(t *testing.T) {
	a := newAuthority(map[string]string{"JWT_SECRET": testSecret})

	token, err := a.issueToken()
	require.NoError(t, err)

	subject, err := a.verifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	// A token signed under a different secret does not verify.
	other := newAuthority(map[string]string{"JWT_SECRET": "different"})
	_, err = other.verifyToken(token)
	assert.Error(t, err)
}
