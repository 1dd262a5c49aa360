package validate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/Emmraan/form-validator/pkg/requestid"
	"github.com/Emmraan/form-validator/pkg/validation"
)

// handleValidate decodes the request body, runs the validation pass, and
// maps the result onto the HTTP status taxonomy: bad requests to 400,
// field violations to 422, everything valid to 200.
func (m *Module) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result := m.service.Validate(r.Context(), req)

	switch result.Status {
	case validation.StatusBadRequest:
		writeError(w, http.StatusBadRequest, result.BadRequestReason)
	case validation.StatusValidationFailure:
		m.log.Info("validation failed",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Int("errors", len(result.Errors)))
		writeFieldErrors(w, http.StatusUnprocessableEntity, result.Errors)
	default:
		resp := successResponse{Success: true, Data: result.Data}
		if result.FieldAnalysis != nil {
			resp.FieldAnalysis = result.FieldAnalysis
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RedisStatus string `json:"redisStatus"`
	Runtime     string `json:"runtime"`
}

// handleHealth reports liveness plus whether the cache is on Redis or the
// in-process fallback.
func (m *Module) handleHealth(w http.ResponseWriter, r *http.Request) {
	cacheStatus := "fallback"
	if m.cacheStatus != nil {
		cacheStatus = m.cacheStatus()
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		RedisStatus: cacheStatus,
		Runtime:     runtime.Version(),
	})
}
