package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/internal/api"
	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/testhelpers"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	testhelpers.SeedRecipes(t, db)

	svc := api.NewServices(db, "test-secret", time.Hour, service.NewAssetService(nil, t.TempDir()))
	router := gin.New()
	api.RegisterRoutes(router, db, svc)
	return &testEnv{db: db, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login creates the account and returns a fresh session token
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	testhelpers.CreateTestUser(t, e.db, email)
	w := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email,
		"pass":  testhelpers.TestPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func stringsReader(s string) io.Reader {
	return bytes.NewBufferString(s)
}
