package movie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMoviePayload_ZeroValuesArePresent(t *testing.T) {
	var p CreateMoviePayload
	body := `{"title":"Wild is life","director":"Alan Smithee","year":"2023","color":"0","duration":0}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.NoError(t, p.Validate())

	m := p.ToMovie(0)
	assert.Equal(t, "0", m.Color)
	assert.Equal(t, 0, m.Duration)
}

func TestCreateMoviePayload_NullIsMissing(t *testing.T) {
	var p CreateMoviePayload
	body := `{"title":"Avatar","director":null,"year":"2009","color":"1","duration":162}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Error(t, p.Validate())
}

func TestUpdateMoviePayload_MissingFields(t *testing.T) {
	p := UpdateMoviePayload{ID: 1}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Harry Potter"}`), &p))
	assert.Error(t, p.Validate())
}
