package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("case-insensitive lookup", func(t *testing.T) {
		headers := NewHeaders(4)
		require.True(t, headers.Add("Host", "example.com"))
		require.True(t, headers.Add("Content-Type", "text/plain"))

		require.Equal(t, "example.com", headers.Value("host"))
		require.Equal(t, "example.com", headers.Value("HOST"))
		require.True(t, headers.Has("content-type"))

		_, found := headers.Get("accept")
		require.False(t, found)
		require.Empty(t, headers.Value("accept"))
	})

	t.Run("first value wins", func(t *testing.T) {
		headers := NewHeaders(4)
		require.True(t, headers.Add("Accept", "text/html"))
		require.True(t, headers.Add("Accept", "text/plain"))
		require.Equal(t, "text/html", headers.Value("accept"))
		require.Equal(t, 2, headers.Len())
	})

	t.Run("bounded capacity", func(t *testing.T) {
		headers := NewHeaders(2)
		require.True(t, headers.Add("A", "1"))
		require.True(t, headers.Add("B", "2"))
		require.False(t, headers.Add("C", "3"))
		require.Equal(t, 2, headers.Len())
	})

	t.Run("wire order preserved", func(t *testing.T) {
		headers := NewHeaders(3)
		headers.Add("B", "2")
		headers.Add("A", "1")

		all := headers.All()
		require.Equal(t, "B", all[0].Key)
		require.Equal(t, "A", all[1].Key)
	})

	t.Run("reset keeps capacity", func(t *testing.T) {
		headers := NewHeaders(1)
		require.True(t, headers.Add("A", "1"))
		headers.Reset()
		require.Zero(t, headers.Len())
		require.True(t, headers.Add("B", "2"))
	})
}
