package advisor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/healthmate/platform/pkg/logging"
)

// Handler handles HTTP requests for the AI advisor flows
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new advisor handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type symptomCheckRequest struct {
	Symptoms string `json:"symptoms"`
}

// SymptomCheck handles POST /api/ai/symptom-check.
func (h *Handler) SymptomCheck(w http.ResponseWriter, r *http.Request) {
	var req symptomCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	assessment, err := h.service.SymptomCheck(r.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			http.Error(w, "symptoms text is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("symptom check failed", "error", err)
		http.Error(w, "symptom check failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

type askResponse struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Fallback  bool   `json:"fallback"`
}

// Ask handles POST /api/ai/ask. A missing session id starts a new session.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.NewString()
	}

	assessment, err := h.service.Ask(r.Context(), req.SessionID, req.Query)
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			http.Error(w, "query text is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("ask failed", "error", err)
		http.Error(w, "ask failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(askResponse{
		SessionID: req.SessionID,
		Text:      assessment.Text,
		Fallback:  assessment.Fallback,
	})
}

type reportAnalysisRequest struct {
	Document string `json:"document"` // base64-encoded
	MimeType string `json:"mime_type"`
}

// AnalyzeReport handles POST /api/ai/report-analysis. The document is
// analyzed only; storing the resulting summary is a separate POST to the
// reports endpoint, so no write can straddle the upstream call.
func (h *Handler) AnalyzeReport(w http.ResponseWriter, r *http.Request) {
	var req reportAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	document, err := base64.StdEncoding.DecodeString(req.Document)
	if err != nil {
		http.Error(w, "document must be base64-encoded", http.StatusBadRequest)
		return
	}

	summary, err := h.service.AnalyzeReport(r.Context(), document, req.MimeType)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyDocument):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAdvisorUnavailable):
			h.logger.Error("report analysis unavailable", "error", err)
			http.Error(w, "report analysis is temporarily unavailable", http.StatusBadGateway)
		default:
			h.logger.Error("report analysis failed", "error", err)
			http.Error(w, "report analysis failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"summary": summary})
}
