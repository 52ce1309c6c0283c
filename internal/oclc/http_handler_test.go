package oclc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worldcat/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux() *http.ServeMux {
	h := NewHTTPHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/oclc/numbers/{oclcNumber}", h.VerifyOne)
	mux.HandleFunc("/v1/oclc/numbers", h.VerifyMany)
	return mux
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHTTPHandler_VerifyOne(t *testing.T) {
	mux := newTestMux()

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/oclc/numbers/ocm00012345", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				OCLCNumber int `json:"oclc_number"`
			} `json:"data"`
		}
		decode(t, w, &body)
		assert.Equal(t, 12345, body.Data.OCLCNumber)
	})

	t.Run("invalid", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/oclc/numbers/bt12345", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body httpx.ErrorResponse
		decode(t, w, &body)
		assert.Equal(t, "INVALID_OCLC_NUMBER", body.Error.Code)
		assert.Equal(t, ReasonMalformed, body.Error.Message)
	})
}

func TestHTTPHandler_VerifyMany(t *testing.T) {
	mux := newTestMux()

	testCases := []struct {
		name    string
		method  string
		target  string
		body    string
		status  int
		numbers []string
		reason  string
	}{
		{
			name:    "query string",
			method:  http.MethodGet,
			target:  "/v1/oclc/numbers?oclcNumbers=ocm12345,%20ocm67890",
			status:  http.StatusOK,
			numbers: []string{"12345", "67890"},
		},
		{
			name:   "missing query",
			method: http.MethodGet,
			target: "/v1/oclc/numbers",
			status: http.StatusBadRequest,
			reason: ReasonInvalidList,
		},
		{
			name:   "only separators",
			method: http.MethodGet,
			target: "/v1/oclc/numbers?oclcNumbers=,,",
			status: http.StatusBadRequest,
			reason: ReasonInvalidList,
		},
		{
			name:    "json integers",
			method:  http.MethodPost,
			target:  "/v1/oclc/numbers",
			body:    `{"oclc_numbers":[12345,67890]}`,
			status:  http.StatusOK,
			numbers: []string{"12345", "67890"},
		},
		{
			name:    "json strings",
			method:  http.MethodPost,
			target:  "/v1/oclc/numbers",
			body:    `{"oclc_numbers":["ocn12345","on67890"]}`,
			status:  http.StatusOK,
			numbers: []string{"12345", "67890"},
		},
		{
			name:   "json float member",
			method: http.MethodPost,
			target: "/v1/oclc/numbers",
			body:   `{"oclc_numbers":[12345.5]}`,
			status: http.StatusBadRequest,
			reason: ReasonInvalidMember,
		},
		{
			name:   "empty list",
			method: http.MethodPost,
			target: "/v1/oclc/numbers",
			body:   `{"oclc_numbers":[]}`,
			status: http.StatusBadRequest,
			reason: ReasonInvalidList,
		},
		{
			name:   "bad json",
			method: http.MethodPost,
			target: "/v1/oclc/numbers",
			body:   `{`,
			status: http.StatusBadRequest,
		},
		{
			name:   "wrong method",
			method: http.MethodDelete,
			target: "/v1/oclc/numbers",
			status: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			require.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.numbers != nil {
				var body struct {
					Data struct {
						OCLCNumbers []string `json:"oclc_numbers"`
					} `json:"data"`
				}
				decode(t, w, &body)
				assert.Equal(t, tc.numbers, body.Data.OCLCNumbers)
			}
			if tc.reason != "" {
				var body httpx.ErrorResponse
				decode(t, w, &body)
				assert.Equal(t, tc.reason, body.Error.Message)
				if assert.NotEmpty(t, body.Error.Details) {
					assert.Equal(t, "oclc_numbers", body.Error.Details[0].Field)
				}
			}
		})
	}
}
