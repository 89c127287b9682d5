package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAbortWithError_KnownError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithError(c, NotFound("Patient does not exist"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "Patient does not exist" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestAbortWithError_ConflictShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithError(c, Conflict("email"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "Validation Error" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if len(body.Errors) != 1 {
		t.Fatalf("expected one field error, got %v", body.Errors)
	}
	fe := body.Errors[0]
	if fe.Field != "email" || fe.Location != "body" {
		t.Errorf("unexpected field error %+v", fe)
	}
	if len(fe.Messages) != 1 || fe.Messages[0] != `"email" already exists` {
		t.Errorf("unexpected messages %v", fe.Messages)
	}
}

func TestAbortWithError_UnknownErrorBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithError(c, errors.New("connection reset"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Error("internal details must not leak to the client")
	}
	if len(c.Errors) != 1 {
		t.Error("the original error should stay on the context for the logger")
	}
}

func TestAPIResponse_OmitsEmptyData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	APIResponse(c, http.StatusOK, true, "OK", nil)

	body := w.Body.String()
	if strings.Contains(body, `"data"`) {
		t.Errorf("nil data should be absent, got %s", body)
	}
	if strings.Contains(body, `"errors"`) {
		t.Errorf("no errors should be absent, got %s", body)
	}
}
