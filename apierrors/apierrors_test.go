package apierrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(NotFound))
	assert.Equal(t, http.StatusBadRequest, Status(ValidationFailed))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized))
	assert.Equal(t, http.StatusForbidden, Status(Forbidden))
	assert.Equal(t, http.StatusConflict, Status(Conflict))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal))
}

func TestRespondKnownKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, E(NotFound, "Order not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, w.Body.String())
}

func TestRespondUnknownErrorIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The underlying cause stays out of the response body.
	assert.NotContains(t, w.Body.String(), "driver")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(Internal, "Failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed: boom", err.Error())
}
