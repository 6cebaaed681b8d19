package server

import (
	"encoding/json"
	"net/http"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/report"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// CheckRequest is the body of POST /v1/check.
type CheckRequest struct {
	Repository string `json:"repository"`
}

// CheckResponse is the success body of POST /v1/check.
type CheckResponse struct {
	Report string          `json:"report"`
	Result *resolve.Result `json:"result"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// handleCheck handles POST /v1/check.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, lserrors.ErrCodeInvalidInput, "invalid JSON body")
		return
	}

	res, err := s.checker.Resolve(r.Context(), req.Repository)
	if err != nil {
		status := lserrors.HTTPStatus(err)
		code := lserrors.GetCode(err)
		if code == "" {
			code = lserrors.ErrCodeInternal
		}
		logger := s.opts.Logger.With("request_id", requestIDFrom(r.Context()))
		if status >= http.StatusInternalServerError {
			logger.Error("check failed", "repository", req.Repository, "code", code, "err", err)
		} else {
			logger.Warn("check rejected", "repository", req.Repository, "code", code, "err", err)
		}
		writeJSONError(w, status, code, lserrors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, CheckResponse{Report: report.Text(res), Result: res})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, code lserrors.Code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: string(code)})
}
