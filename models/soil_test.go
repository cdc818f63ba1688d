package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValueUnmarshal(t *testing.T) {
	var form SoilForm
	raw := `{"phLevel": 6.5, "nitrogen": "40", "phosphorus": null, "potassium": "", "soilMoisture": -3}`
	require.NoError(t, json.Unmarshal([]byte(raw), &form))

	assert.Equal(t, FormValue("6.5"), form.PHLevel)
	assert.Equal(t, FormValue("40"), form.Nitrogen)
	assert.Equal(t, FormValue(""), form.Phosphorus)
	assert.Equal(t, FormValue(""), form.Potassium)
	assert.Equal(t, FormValue(""), form.OrganicMatter)
	assert.Equal(t, FormValue("-3"), form.SoilMoisture)
}

func TestSoilSampleSetAndValue(t *testing.T) {
	var s SoilSample
	assert.True(t, s.IsEmpty())

	for i, p := range CanonicalParameters {
		s.Set(p, float64(i))
	}
	assert.False(t, s.IsEmpty())
	for i, p := range CanonicalParameters {
		require.NotNil(t, s.Value(p))
		assert.Equal(t, float64(i), *s.Value(p))
	}

	assert.Nil(t, s.Value(SoilParameter("calcium")))
}

func TestSoilSampleJSONOmitsMissing(t *testing.T) {
	s := SoilSample{PHLevel: Float(0), SoilMoisture: Float(48)}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phLevel":0,"soilMoisture":48}`, string(data))
}
