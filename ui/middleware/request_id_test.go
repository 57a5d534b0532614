package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/core"
)

func TestRequestID_Gin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var seen core.RequestID
	router.GET("/", func(c *gin.Context) {
		id, ok := RequestIDFrom(c.Request.Context())
		require.True(t, ok)
		seen = id
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen.String(), w.Header().Get(RequestIDHeader))
}

func TestRequestIDHandler_KeepsValidCallerID(t *testing.T) {
	const callerID = "0192f7a0-6c2e-7b7e-9a51-3f1c1d2e4b5a"
	h := RequestIDHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFrom(r.Context())
		assert.True(t, ok)
		assert.Equal(t, core.RequestID(callerID), id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, callerID)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, callerID, w.Header().Get(RequestIDHeader))
}

func TestRequestIDHandler_ReplacesGarbage(t *testing.T) {
	h := RequestIDHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	got := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "<script>", got)
	_, err := core.ParseRequestID(got)
	assert.NoError(t, err)
}
