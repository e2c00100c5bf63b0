package handler

import (
	"Quorum/config"
	"Quorum/pkg/jwt"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type router interface {
	RegisterRouter(r gin.IRouter)
}

func testConfig() *config.Config {
	return &config.Config{Jwt: &config.Jwt{Secret: testSecret}}
}

func newEngine(handlers ...router) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRouter(api)
	}
	return r
}

func token(t *testing.T, uid uint64) string {
	t.Helper()
	tok, err := jwt.GenerateToken([]byte(testSecret), uid, jwt.TypeAccess, time.Minute)
	require.NoError(t, err)
	return tok
}

type apiResp struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// do 发起请求, uid 为 0 时不带 token
func do(t *testing.T, r http.Handler, method, path string, uid uint64, body any) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != 0 {
		req.Header.Set("Authorization", "Bearer "+token(t, uid))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}
