package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func csrfCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CSRFCookie {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", CSRFCookie)
	return nil
}

func TestCSRFIssuesCookieOnSafeMethod(t *testing.T) {
	r := newCSRFRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	ck := csrfCookie(t, w)
	assert.NotEmpty(t, ck.Value)
	// 前端需要读取回显，不能 HttpOnly
	assert.False(t, ck.HttpOnly)
}

func TestCSRFBlocksWriteWithoutToken(t *testing.T) {
	r := newCSRFRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "CSRF token mismatch.")
}

func TestCSRFBlocksMismatchedToken(t *testing.T) {
	r := newCSRFRouter()

	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookie, Value: "aaa"})
	req.Header.Set(CSRFHeader, "bbb")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFAllowsMatchingToken(t *testing.T) {
	r := newCSRFRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	ck := csrfCookie(t, w)

	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookie, Value: ck.Value})
	req.Header.Set(CSRFHeader, ck.Value)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
