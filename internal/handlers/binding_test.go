package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// These tests exercise the request-binding side of the handlers: every bad
// payload must be rejected before the handler touches storage, so the store
// package vars can stay unwired here.

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, handler gin.HandlerFunc, route, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(route, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePatient_RejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing required fields", `{}`},
		{"bad specialist id", `{"specialistid":"short","name":"M","cpf":"1","gender":"feminino","birthday":"1990-04-12","phone":"1","address":"a","city":"b","state":"c"}`},
		{"bad gender", `{"specialistid":"68b1c4f2e4b0a1b2c3d4e5f6","name":"M","cpf":"1","gender":"other","birthday":"1990-04-12","phone":"1","address":"a","city":"b","state":"c"}`},
		{"bad birthday length", `{"specialistid":"68b1c4f2e4b0a1b2c3d4e5f6","name":"M","cpf":"1","gender":"feminino","birthday":"1990-4-12","phone":"1","address":"a","city":"b","state":"c"}`},
	}

	for _, tc := range cases {
		w := postJSON(t, CreatePatient, "/patients", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestListPatients_RejectsBadQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"perPage above cap", "?perPage=200"},
		{"zero page", "?page=0"},
		{"negative page", "?page=-2"},
		{"non-numeric page", "?page=abc"},
	}

	for _, tc := range cases {
		w := getPath(t, ListPatients, "/patients", "/patients"+tc.query)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestCreateSpecialist_RejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing required fields", `{}`},
		{"password mismatch", `{"name":"J","email":"j@example.com","password":"secret123","confirmpassword":"different1","crp":"06/1","approach":"TCC","phone":"1"}`},
		{"short password", `{"name":"J","email":"j@example.com","password":"abc","confirmpassword":"abc","crp":"06/1","approach":"TCC","phone":"1"}`},
		{"bad email", `{"name":"J","email":"not-an-email","password":"secret123","confirmpassword":"secret123","crp":"06/1","approach":"TCC","phone":"1"}`},
	}

	for _, tc := range cases {
		w := postJSON(t, CreateSpecialist, "/specialists", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestLogin_RejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing password", `{"email":"j@example.com"}`},
		{"bad email", `{"email":"nope","password":"secret123"}`},
	}

	for _, tc := range cases {
		w := postJSON(t, Login, "/auth/login", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}
