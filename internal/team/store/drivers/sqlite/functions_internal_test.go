package sqlite

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnicodeLower(t *testing.T) {
	cases := []struct {
		in   driver.Value
		want driver.Value
	}{
		{"Élodie Ñúñez", "élodie ñúñez"},
		{"FORLÌ", "forlì"},
		{"Alice", "alice"},
		{[]byte("ÀÈÌ"), "àèì"},
		{nil, nil},
		{int64(7), int64(7)},
	}
	for _, tc := range cases {
		got, err := unicodeLower(nil, []driver.Value{tc.in})
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestUnicodeLowerInQueries(t *testing.T) {
	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var got string
	require.NoError(t, st.db.QueryRow(`SELECT `+unicodeLowerFunc+`(?)`, "ÉLODIE").Scan(&got))
	require.Equal(t, "élodie", got)

	// The built-in stays ASCII-only.
	require.NoError(t, st.db.QueryRow(`SELECT lower(?)`, "ÉLODIE").Scan(&got))
	require.Equal(t, "Élodie", got)
}
