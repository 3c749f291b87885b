package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	t.Parallel()

	t.Run("parses comma separated ids", func(t *testing.T) {
		ids, err := ParseIDList("1,2,3")
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("tolerates whitespace around tokens", func(t *testing.T) {
		ids, err := ParseIDList(" 4 , 5 ")
		require.NoError(t, err)
		require.Equal(t, []int64{4, 5}, ids)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		ids, err := ParseIDList("")
		require.NoError(t, err)
		require.Nil(t, ids)
	})

	t.Run("single bad token fails the whole parse", func(t *testing.T) {
		_, err := ParseIDList("1,abc,3")
		require.Error(t, err)

		_, err = ParseIDList("abc")
		require.Error(t, err)

		_, err = ParseIDList("1,,2")
		require.Error(t, err)
	})
}

func TestWriteJSONSetsHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]string{"ok": "yes"})

	require.Equal(t, 201, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}
