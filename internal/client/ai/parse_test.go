package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "raw json untouched",
			in:   `{"sentiment":"positive"}`,
			want: `{"sentiment":"positive"}`,
		},
		{
			name: "fenced json",
			in:   "```json\n{\"sentiment\":\"positive\"}\n```",
			want: `{"sentiment":"positive"}`,
		},
		{
			name: "leading prose",
			in:   "Here is the result:\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "trailing prose",
			in:   "{\"a\":1}\nHope this helps!",
			want: `{"a":1}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cleanModelJSON(tc.in))
		})
	}
}

func TestDecodeModelJSON_FencedEqualsRaw(t *testing.T) {
	var fenced, raw EntryAnalysis
	require.NoError(t, decodeModelJSON("```json\n{\"sentiment\":\"calm\",\"reflection\":\"ok\",\"tags\":[\"x\"]}\n```", &fenced))
	require.NoError(t, decodeModelJSON(`{"sentiment":"calm","reflection":"ok","tags":["x"]}`, &raw))
	require.Equal(t, raw, fenced)
}

func TestDecodeModelJSON_Invalid(t *testing.T) {
	var out EntryAnalysis
	require.Error(t, decodeModelJSON("no json at all", &out))
}

func TestExtraction_NormalizeAndTotal(t *testing.T) {
	var e Extraction
	require.NoError(t, decodeModelJSON(`{"people":[{"name":"Sarah"}]}`, &e))
	e.Normalize()
	require.NotNil(t, e.Events)
	require.NotNil(t, e.Feelings)
	require.Equal(t, 1, e.Total())
}
