package validate

import (
	"encoding/json"
	"net/http"

	"github.com/Emmraan/form-validator/pkg/validation"
)

type successResponse struct {
	Success       bool           `json:"success"`
	Data          map[string]any `json:"data"`
	FieldAnalysis any            `json:"fieldAnalysis,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type fieldErrorsResponse struct {
	Success bool                    `json:"success"`
	Errors  []validation.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeFieldErrors(w http.ResponseWriter, status int, errs []validation.FieldError) {
	writeJSON(w, status, fieldErrorsResponse{Success: false, Errors: errs})
}
