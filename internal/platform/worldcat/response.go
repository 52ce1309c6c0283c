package worldcat

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the read-only view of a failed web service response.
type ErrorResponse interface {
	StatusCode() int
	URL() string
	Text() string
}

// ParseErrorResponse renders a failed response as a single diagnostic line.
// The body is used verbatim. A nil response or missing fields render empty.
func ParseErrorResponse(r ErrorResponse) string {
	var (
		code      int
		text, url string
	)
	if r != nil {
		code, text, url = r.StatusCode(), r.Text(), r.URL()
	}
	return fmt.Sprintf("Web service returned %d error: %s; %s", code, text, url)
}

// ServiceError is returned by Client when the web service answers with a
// non-2xx status.
type ServiceError struct {
	Status     int
	RequestURL string
	Body       string
}

func (e *ServiceError) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.Status
}

func (e *ServiceError) URL() string {
	if e == nil {
		return ""
	}
	return e.RequestURL
}

func (e *ServiceError) Text() string {
	if e == nil {
		return ""
	}
	return e.Body
}

func (e *ServiceError) Error() string {
	return ParseErrorResponse(e)
}

// HTTPResponse adapts a consumed *http.Response and its body to ErrorResponse.
type HTTPResponse struct {
	Response *http.Response
	Body     []byte
}

func (r HTTPResponse) StatusCode() int {
	if r.Response == nil {
		return 0
	}
	return r.Response.StatusCode
}

func (r HTTPResponse) URL() string {
	if r.Response == nil || r.Response.Request == nil || r.Response.Request.URL == nil {
		return ""
	}
	return r.Response.Request.URL.String()
}

func (r HTTPResponse) Text() string {
	return string(r.Body)
}

func newServiceError(r ErrorResponse) *ServiceError {
	return &ServiceError{
		Status:     r.StatusCode(),
		RequestURL: r.URL(),
		Body:       r.Text(),
	}
}
