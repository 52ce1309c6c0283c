package bib

import (
	"errors"
	"net/http"

	"worldcat/internal/httpx"
	"worldcat/internal/oclc"
	"worldcat/internal/platform/worldcat"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// GetBib handles GET /v1/bibs/{oclcNumber}
func (h *HTTPHandler) GetBib(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetBib(r.Context(), r.PathValue("oclcNumber"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/marcxml+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rec)
}

// CurrentNumbers handles GET /v1/bibs/current?oclcNumbers=a,b
func (h *HTTPHandler) CurrentNumbers(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.svc.CurrentNumbers(r.Context(), r.URL.Query().Get("oclcNumbers"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, numbers, nil)
}

// SetHolding handles POST /v1/holdings/{oclcNumber}
func (h *HTTPHandler) SetHolding(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SetHolding(r.Context(), r.PathValue("oclcNumber"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if oclc.WriteError(w, r, err) {
		return
	}
	var svcErr *worldcat.ServiceError
	if errors.As(err, &svcErr) {
		status := http.StatusBadGateway
		if svcErr.Status == http.StatusNotFound {
			status = http.StatusNotFound
		}
		httpx.JSONError(w, r, status, "WORLDCAT_ERROR", svcErr.Error(), nil)
		return
	}
	httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "WorldCat is unavailable", nil)
}
