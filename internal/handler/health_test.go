package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Connected", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockDB.AssertExpectations(t)
	})

	t.Run("Database Timeout", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"database connection failed"`)
	})

	t.Run("In-memory store", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version"`)
}
