package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, "OK", Text(OK))
	require.Equal(t, "Switching Protocols", Text(SwitchingProtocols))
	require.Equal(t, "Request Header Fields Too Large", Text(RequestHeaderFieldsTooLarge))
	require.Equal(t, "", Text(Code(599)))
}

func TestErrorCode(t *testing.T) {
	err := ErrTooManyHeaders
	require.Equal(t, RequestHeaderFieldsTooLarge, err.(HTTPError).Code)
	require.EqualError(t, err, "too many headers")
}
