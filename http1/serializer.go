package http1

import (
	"github.com/indigo-web/weblite/buffer"
	"github.com/indigo-web/weblite/http"
	"github.com/indigo-web/weblite/http/status"
)

// Serializer writes responses into an output buffer as plain HTTP/1.1
// bytes. It is a thin deterministic writer: headers are emitted exactly as
// supplied, nothing (Content-Length included) is defaulted, and the first
// append that exceeds the buffer capacity aborts the write with
// status.ErrOverflow. A failed write leaves partial bytes behind; the
// caller must Reset the buffer before retrying, never send it.
type Serializer struct{}

func (Serializer) Write(resp *http.Response, out *buffer.Buffer) error {
	if err := resp.Err(); err != nil {
		return err
	}
	if resp.Code < 100 || resp.Code > 599 {
		return status.ErrInvalidStatusCode
	}

	ok := out.AppendString("HTTP/1.1 ") &&
		out.AppendByte(byte('0'+resp.Code/100)) &&
		out.AppendByte(byte('0'+resp.Code/10%10)) &&
		out.AppendByte(byte('0'+resp.Code%10))

	reason := resp.Status
	if len(reason) == 0 {
		reason = status.Text(resp.Code)
	}
	if len(reason) > 0 {
		ok = ok && out.AppendByte(' ') && out.AppendString(reason)
	}

	ok = ok && out.AppendString("\r\n")

	for _, field := range resp.Headers.All() {
		ok = ok &&
			out.AppendString(field.Key) &&
			out.AppendString(": ") &&
			out.AppendString(field.Value) &&
			out.AppendString("\r\n")
	}

	ok = ok && out.AppendString("\r\n") && out.Append(resp.Body)
	if !ok {
		return status.ErrOverflow
	}

	return nil
}
