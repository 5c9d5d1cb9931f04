package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundLabel_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(RoundNumber(3))
	require.NoError(t, err)
	assert.Equal(t, `3`, string(data))

	data, err = json.Marshal(SummaryLabel)
	require.NoError(t, err)
	assert.Equal(t, `"Summary"`, string(data))
}

func TestRoundLabel_UnmarshalJSON(t *testing.T) {
	var l RoundLabel
	require.NoError(t, json.Unmarshal([]byte(`2`), &l))
	assert.Equal(t, 2, l.Index())
	assert.False(t, l.IsSummary())

	require.NoError(t, json.Unmarshal([]byte(`"Summary"`), &l))
	assert.True(t, l.IsSummary())
	assert.Equal(t, "Summary", l.String())

	assert.Error(t, json.Unmarshal([]byte(`0`), &l))
	assert.Error(t, json.Unmarshal([]byte(`"Final"`), &l))
}

func TestResponses_PreservesInsertionOrder(t *testing.T) {
	r := NewResponses()
	r.Set(ChairmanLabel, "c")
	r.Set("Zeta", "z")
	r.Set("Alpha", "a")
	r.Set("Zeta", "z2") // overwrite keeps position

	assert.Equal(t, []string{ChairmanLabel, "Zeta", "Alpha"}, r.Names())
	assert.Equal(t, 3, r.Len())

	text, ok := r.Get("Zeta")
	assert.True(t, ok)
	assert.Equal(t, "z2", text)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Chairman":"c","Zeta":"z2","Alpha":"a"}`, string(data))
}

func TestResponses_UnmarshalKeepsDocumentOrder(t *testing.T) {
	var r Responses
	require.NoError(t, json.Unmarshal([]byte(`{"Chairman":"c","M2":"two","M1":"one"}`), &r))
	assert.Equal(t, []string{"Chairman", "M2", "M1"}, r.Names())

	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &r))
}

func TestRound_JSONShape(t *testing.T) {
	resp := NewResponses()
	resp.Set(ChairmanLabel, "wrap-up")
	out := DiscussResponse{
		Topic:  "t",
		Rounds: []Round{{Label: SummaryLabel, Responses: resp}},
	}
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"t","rounds":[{"round":"Summary","responses":{"Chairman":"wrap-up"}}]}`, string(data))
}
