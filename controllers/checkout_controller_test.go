package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondCheckoutError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booking khong ton tai", errors.ErrBookingNotFound, http.StatusNotFound},
		{"phong khong ton tai", errors.ErrRoomNotFound, http.StatusNotFound},
		{"trang thai khong hop le", errors.ErrInvalidState, http.StatusBadRequest},
		{"ngay khong hop le", errors.ErrInvalidDateRange, http.StatusBadRequest},
		{"loi khac", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondCheckoutError(c, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
