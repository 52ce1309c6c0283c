package oclc

import (
	"encoding/json"
	"errors"
	"net/http"

	"worldcat/internal/httpx"
)

type HTTPHandler struct{}

func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

type numbersRequest struct {
	OCLCNumbers any `json:"oclc_numbers" validate:"required,oclc_list"`
}

// VerifyOne handles GET /v1/oclc/numbers/{oclcNumber}
func (h *HTTPHandler) VerifyOne(w http.ResponseWriter, r *http.Request) {
	n, err := VerifyNumber(r.PathValue("oclcNumber"))
	if err != nil {
		writeInvalid(w, r, err, nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]int{"oclc_number": n}, nil)
}

// VerifyMany handles GET /v1/oclc/numbers?oclcNumbers=a,b and
// POST /v1/oclc/numbers with {"oclc_numbers": [...] | "a,b"}.
func (h *HTTPHandler) VerifyMany(w http.ResponseWriter, r *http.Request) {
	var req numbersRequest
	switch r.Method {
	case http.MethodGet:
		if v := r.URL.Query().Get("oclcNumbers"); v != "" {
			req.OCLCNumbers = v
		}
	case http.MethodPost:
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
			return
		}
		req.OCLCNumbers = plainJSON(req.OCLCNumbers)
	default:
		w.Header().Set("Allow", "GET, POST")
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if fields := ValidateStruct(req); fields != nil {
		reason := fields[0].Reason
		if reason == "" {
			reason = ReasonInvalidList
		}
		writeInvalid(w, r, invalid(reason), fields)
		return
	}

	numbers, err := VerifyNumbers(req.OCLCNumbers)
	if err != nil {
		writeInvalid(w, r, err, nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string][]string{"oclc_numbers": numbers}, map[string]any{
		"count": len(numbers),
	})
}

// plainJSON turns json.Number members into strings so that integral values
// read as digits and fractional ones fail the digit check.
func plainJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			if n, ok := e.(json.Number); ok {
				out[i] = n.String()
			} else {
				out[i] = e
			}
		}
		return out
	}
	return v
}

func writeInvalid(w http.ResponseWriter, r *http.Request, err error, fields []FieldError) {
	reason, ok := ReasonOf(err)
	if !ok {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	var details []httpx.ErrorDetail
	for _, f := range fields {
		details = append(details, httpx.ErrorDetail{Field: f.Field, Message: f.Message})
	}
	httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_OCLC_NUMBER", reason, details)
}

// WriteError renders err as an invalid OCLC number response when it is one.
// It reports false for any other error.
func WriteError(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, ErrInvalidNumber) {
		return false
	}
	writeInvalid(w, r, err, nil)
	return true
}
