package advisor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHandler(client Client) *Handler {
	return NewHandler(newTestAdvisor(client), nil)
}

func TestSymptomCheckHandler(t *testing.T) {
	client := &fakeClient{symptomResponses: []response{{text: "assessment"}}}
	h := newTestHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/symptom-check", strings.NewReader(`{"symptoms":"fever for 3 days"}`))
	rec := httptest.NewRecorder()
	h.SymptomCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Fallback || got.Text != "assessment" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestSymptomCheckHandlerEmptySymptoms(t *testing.T) {
	h := newTestHandler(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/symptom-check", strings.NewReader(`{"symptoms":""}`))
	rec := httptest.NewRecorder()
	h.SymptomCheck(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSymptomCheckHandlerFallbackStill200(t *testing.T) {
	client := &fakeClient{symptomResponses: []response{
		{err: errors.New("down")},
		{err: errors.New("down")},
	}}
	h := newTestHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/symptom-check", strings.NewReader(`{"symptoms":"cough"}`))
	rec := httptest.NewRecorder()
	h.SymptomCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fallback, got %d", rec.Code)
	}
	var got Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Fallback {
		t.Fatalf("expected fallback assessment, got %+v", got)
	}
}

func TestAskHandlerGeneratesSessionID(t *testing.T) {
	client := &fakeClient{askResponses: []response{{text: "answer"}}}
	h := newTestHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"query":"is 8 hours of sleep enough?"}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.SessionID == "" {
		t.Fatal("expected a generated session id")
	}
	if got.Text != "answer" || got.Fallback {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestAskHandlerKeepsProvidedSessionID(t *testing.T) {
	client := &fakeClient{askResponses: []response{{text: "answer"}}}
	h := newTestHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"session_id":"session-42","query":"hi"}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	var got askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.SessionID != "session-42" {
		t.Fatalf("expected session id echoed back, got %q", got.SessionID)
	}
}

func TestAskHandlerEmptyQuery(t *testing.T) {
	h := newTestHandler(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/ask", strings.NewReader(`{"query":""}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeReportHandler(t *testing.T) {
	client := &fakeClient{reportResponses: []response{{text: "normal blood panel"}}}
	h := newTestHandler(client)

	doc := base64.StdEncoding.EncodeToString([]byte("pdf bytes"))
	body := `{"document":"` + doc + `","mime_type":"application/pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/report-analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AnalyzeReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["summary"] != "normal blood panel" {
		t.Fatalf("unexpected summary: %q", got["summary"])
	}
}

func TestAnalyzeReportHandlerBadBase64(t *testing.T) {
	h := newTestHandler(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/report-analysis", strings.NewReader(`{"document":"%%%not-base64%%%","mime_type":"image/png"}`))
	rec := httptest.NewRecorder()
	h.AnalyzeReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeReportHandlerEmptyDocument(t *testing.T) {
	h := newTestHandler(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/report-analysis", strings.NewReader(`{"document":"","mime_type":"image/png"}`))
	rec := httptest.NewRecorder()
	h.AnalyzeReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeReportHandlerUpstreamDown(t *testing.T) {
	client := &fakeClient{reportResponses: []response{
		{err: errors.New("down")},
		{err: errors.New("down")},
	}}
	h := newTestHandler(client)

	doc := base64.StdEncoding.EncodeToString([]byte{0x1})
	body := `{"document":"` + doc + `","mime_type":"image/png"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/report-analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AnalyzeReport(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
