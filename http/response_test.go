package http

import (
	"testing"

	"github.com/indigo-web/weblite/config"
	"github.com/indigo-web/weblite/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("builders", func(t *testing.T) {
		resp := NewResponse(config.Default()).
			WithCode(status.NotFound).
			WithHeader("Content-Type", "text/plain").
			WithContentLength(9).
			WithBody([]byte("not found"))

		require.NoError(t, resp.Err())
		require.Equal(t, status.NotFound, resp.Code)
		require.Equal(t, "text/plain", resp.Headers.Value("content-type"))
		require.Equal(t, "9", resp.Headers.Value("content-length"))
		require.Equal(t, "not found", string(resp.Body))
	})

	t.Run("header overflow is recorded", func(t *testing.T) {
		cfg := config.Default()
		cfg.Headers.MaxNumber = 1
		resp := NewResponse(cfg).
			WithHeader("A", "1").
			WithHeader("B", "2")

		require.ErrorIs(t, resp.Err(), status.ErrTooManyHeaders)
	})

	t.Run("reset", func(t *testing.T) {
		resp := NewResponse(config.Default()).
			WithStatus(status.Code(418), "I'm a teapot").
			WithBody([]byte("x"))
		resp.Reset()
		require.Equal(t, status.OK, resp.Code)
		require.Nil(t, resp.Body)
		require.Zero(t, resp.Headers.Len())
		require.NoError(t, resp.Err())
	})
}
