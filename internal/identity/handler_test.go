package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOnboardHandlerCreatesIdentity(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), nil)

	body := `{"email":"a@x.com","name":"Alice","role":"patient"}`
	req := httptest.NewRequest(http.MethodPost, "/api/onboard", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Onboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var ident Identity
	if err := json.NewDecoder(rec.Body).Decode(&ident); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ident.Email != "a@x.com" || ident.Role != RolePatient {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestOnboardHandlerRepeatEmailReturnsOriginal(t *testing.T) {
	repo := NewInMemoryRepository()
	h := NewHandler(repo, nil)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/onboard", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Onboard(rec, req)
		return rec
	}

	post(`{"email":"a@x.com","name":"Alice","role":"patient"}`)
	rec := post(`{"email":"a@x.com","name":"Alice2","role":"owner"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("repeat onboarding must not error, got %d", rec.Code)
	}
	var ident Identity
	if err := json.NewDecoder(rec.Body).Decode(&ident); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ident.Name != "Alice" || ident.Role != RolePatient {
		t.Fatalf("expected original record, got %+v", ident)
	}
}

func TestOnboardHandlerRejectsBadPayloads(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"unknown role", `{"email":"a@x.com","name":"Alice","role":"superuser"}`},
		{"missing name", `{"email":"a@x.com","role":"patient"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/onboard", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Onboard(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
