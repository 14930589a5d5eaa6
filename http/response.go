package http

import (
	"strconv"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/weblite/config"
	"github.com/indigo-web/weblite/http/status"
)

// Response is a structured response to be serialized. Fields may be filled
// directly or through the fluent With* helpers; the helpers additionally
// record bound violations, surfaced later by the serializer, so call sites
// stay chainable.
type Response struct {
	// Code is the status code, 100..599.
	Code status.Code
	// Status is the reason phrase. When empty, the serializer substitutes
	// status.Text(Code), emitting a bare code for unknown ones.
	Status string
	// Headers holds the fields to emit, in order. Nothing is added
	// implicitly: no Content-Length, no Server, nothing.
	Headers Headers
	// Body is written verbatim after the header block.
	Body []byte

	clbuf [20]byte
	err   error
}

func NewResponse(cfg *config.Config) *Response {
	return &Response{
		Code:    status.OK,
		Headers: NewHeaders(cfg.Headers.MaxNumber),
	}
}

// WithCode sets the status code, leaving the reason phrase derived.
func (r *Response) WithCode(code status.Code) *Response {
	r.Code = code
	r.Status = ""
	return r
}

// WithStatus sets the code along with an explicit reason phrase.
func (r *Response) WithStatus(code status.Code, reason string) *Response {
	r.Code = code
	r.Status = reason
	return r
}

// WithHeader appends a header field. On overflow the response is marked
// broken and the serializer reports status.ErrTooManyHeaders.
func (r *Response) WithHeader(key, value string) *Response {
	if !r.Headers.Add(key, value) && r.err == nil {
		r.err = status.ErrTooManyHeaders
	}

	return r
}

// WithContentLength appends a Content-Length header for n bytes. The digits
// live in a scratch array inside the response, valid until the next Reset.
func (r *Response) WithContentLength(n int) *Response {
	digits := strconv.AppendUint(r.clbuf[:0], uint64(n), 10)
	return r.WithHeader("Content-Length", uf.B2S(digits))
}

// WithBody sets the body bytes. The slice is borrowed, not copied.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

// Err reports a bound violation recorded by the builders, if any.
func (r *Response) Err() error {
	return r.err
}

// Reset returns the response to its initial 200 state.
func (r *Response) Reset() *Response {
	r.Code = status.OK
	r.Status = ""
	r.Headers.Reset()
	r.Body = nil
	r.err = nil
	return r
}
