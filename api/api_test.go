package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nohithkv/portfolio-backend/database"
)

const testSecret = "test-secret-key"

// setupTestDB creates a throwaway SQLite database for testing
func setupTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return database.New(db)
}

// setupTestRouter builds the full router over a fresh database. Extra config
// entries override the test defaults.
func setupTestRouter(t *testing.T, extra map[string]string) *chi.Mux {
	t.Helper()

	cfg := map[string]string{
		"JWT_SECRET":  testSecret,
		"UPLOADS_DIR": t.TempDir(),
	}
	for key, value := range extra {
		cfg[key] = value
	}

	return newRouter(setupTestDB(t), withConfig(cfg))
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		// The frontend sends the raw token, not the Bearer-prefixed form.
		req.Header.Set("Authorization", token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// loginToken performs a login with the default admin credentials
func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func decodeJSON[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}
