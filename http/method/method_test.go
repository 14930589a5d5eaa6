package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	known := []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

	for _, m := range known {
		require.Equal(t, m, Parse(m.String()))
	}

	for _, token := range []string{"", "get", "GE", "GETT", "BREW", "PROPFIND"} {
		require.Equal(t, Unknown, Parse(token), token)
	}
}
