package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload_Kinds(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind PayloadKind
		len  int
	}{
		{"array", `[{"id":1},{"id":2}]`, KindArray, 2},
		{"data wrapper", `{"data":[{"id":1}],"total":1}`, KindData, 1},
		{"statistics wrapper", `{"success":true,"statistics":[{"id":1},{"id":2}]}`, KindStatistics, 2},
		{"nested response", `{"statistics":{"data":[{"id":1}],"total":1}}`, KindNested, 1},
		{"flat object", `{"a":{"value":1},"b":2}`, KindFlat, 2},
		{"data not an array", `{"data":"x","k":3}`, KindFlat, 2},
		{"null", `null`, KindEmpty, 0},
		{"scalar", `42`, KindEmpty, 0},
		{"surrounding whitespace", "\n  [ ]  \n", KindArray, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePayload([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Len(t, p.Normalize(), tt.len)
		})
	}
}

func TestDecodePayload_Invalid(t *testing.T) {
	for _, body := range []string{"", "{", `[{"id":1}`, "<html>"} {
		_, err := DecodePayload([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestNormalize_FlatObject(t *testing.T) {
	p, err := DecodePayload([]byte(`{"a": {"title":"A","value":5}, "b": {"title":"B","value":9}}`))
	require.NoError(t, err)

	got := p.Normalize()

	require.Len(t, got, 2)
	assert.Equal(t, StringID("a"), got[0].ID)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, Number(5), got[0].Value)
	assert.Equal(t, StringID("b"), got[1].ID)
	assert.Equal(t, "B", got[1].Title)
	assert.Equal(t, Number(9), got[1].Value)
}

func TestNormalize_FlatScalarsKeepDocumentOrder(t *testing.T) {
	p, err := DecodePayload([]byte(`{"zeta": 3, "alpha": "high", "mid": {"category":"x"}, "zeta": 4}`))
	require.NoError(t, err)

	got := p.Normalize()

	require.Len(t, got, 3)
	assert.Equal(t, "zeta", got[0].ID.String())
	assert.Equal(t, "zeta", got[0].Title, "key doubles as title")
	assert.Equal(t, Number(4), got[0].Value, "repeated key keeps last value")
	assert.Equal(t, "alpha", got[1].ID.String())
	assert.Equal(t, Text("high"), got[1].Value)
	assert.Equal(t, "mid", got[2].Title)
	assert.Equal(t, Number(0), got[2].Value, "object without value defaults to zero")
	assert.Equal(t, "x", got[2].Category)
}

func TestNormalize_Defaults(t *testing.T) {
	p, err := DecodePayload([]byte(`[
		{"title":"Share","value":"12%"},
		{},
		{"id":7,"value":0},
		{"id":0,"title":"","value":""},
		"not an object",
		{"id":"","value":null}
	]`))
	require.NoError(t, err)

	got := p.Normalize()
	require.Len(t, got, 6)

	assert.Equal(t, StringID("0"), got[0].ID)
	assert.Equal(t, "Share", got[0].Title)
	assert.Equal(t, Text("12%"), got[0].Value)

	assert.Equal(t, StringID("1"), got[1].ID)
	assert.Equal(t, "Statistic 2", got[1].Title)
	assert.Equal(t, Number(0), got[1].Value)

	assert.Equal(t, IntID(7), got[2].ID)
	assert.Equal(t, "Statistic 3", got[2].Title)

	assert.Equal(t, StringID("3"), got[3].ID, "numeric zero id is replaced")
	assert.Equal(t, "Statistic 4", got[3].Title)
	assert.Equal(t, Number(0), got[3].Value, "empty text value is replaced")

	assert.Equal(t, StringID("4"), got[4].ID)
	assert.Equal(t, "Statistic 5", got[4].Title)

	assert.Equal(t, StringID("5"), got[5].ID)
}

func TestNormalize_OptionalFields(t *testing.T) {
	p, err := DecodePayload([]byte(`{"statistics": [
		{"id":"x","title":"T","value":1,"description":"d","category":"movies","date":"2024-05-01","trend":"UP","percentage":"12.5%"},
		{"id":"y","title":"U","value":2,"trend":"sideways","percentage":null},
		{"id":"z","title":"V","value":3,"trend":"down","percentage":-4}
	]}`))
	require.NoError(t, err)

	got := p.Normalize()
	require.Len(t, got, 3)

	assert.Equal(t, "d", got[0].Description)
	assert.Equal(t, "movies", got[0].Category)
	assert.Equal(t, "2024-05-01", got[0].Date)
	assert.Equal(t, TrendUp, got[0].Trend)
	require.NotNil(t, got[0].Percentage)
	assert.InDelta(t, 12.5, *got[0].Percentage, 0.0001)

	assert.Empty(t, got[1].Trend, "unknown trend is dropped")
	assert.Nil(t, got[1].Percentage)

	assert.Equal(t, TrendDown, got[2].Trend)
	require.NotNil(t, got[2].Percentage)
	assert.InDelta(t, -4, *got[2].Percentage, 0.0001)
}

func TestNormalize_NestedResponse(t *testing.T) {
	p, err := DecodePayload([]byte(`{"success":true,"statistics":{"data":[{"id":"n1","title":"Nested","value":10}],"total":1}}`))
	require.NoError(t, err)

	got := p.Normalize()
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID.String())
	assert.Equal(t, Number(10), got[0].Value)
}

func TestNormalize_EmptyIsNotNil(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `{}`, `"text"`} {
		p, err := DecodePayload([]byte(body))
		require.NoError(t, err)

		got := p.Normalize()
		assert.NotNil(t, got, "body %s", body)
		assert.Empty(t, got, "body %s", body)
	}
}
