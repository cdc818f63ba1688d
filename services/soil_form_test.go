package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-krushivishwa/models"
)

func TestParseSoilForm(t *testing.T) {
	sample, err := ParseSoilForm(models.SoilForm{
		PHLevel:      "6.5",
		Nitrogen:     "abc",
		Phosphorus:   "",
		SoilMoisture: "0",
	})
	require.NoError(t, err)

	require.NotNil(t, sample.PHLevel)
	assert.Equal(t, 6.5, *sample.PHLevel)
	assert.Nil(t, sample.Nitrogen, "unparseable input is absent, not zero")
	assert.Nil(t, sample.Phosphorus)
	require.NotNil(t, sample.SoilMoisture)
	assert.Equal(t, 0.0, *sample.SoilMoisture, "zero is a real reading")
}

func TestParseSoilForm_Empty(t *testing.T) {
	_, err := ParseSoilForm(models.SoilForm{Nitrogen: "n/a", Potassium: " "})
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestValidateSoilFields(t *testing.T) {
	problems := ValidateSoilFields(models.SoilSample{
		PHLevel:       models.Float(15),
		Nitrogen:      models.Float(-1),
		Phosphorus:    models.Float(250),
		Potassium:     models.Float(500),
		OrganicMatter: models.Float(101),
		SoilMoisture:  models.Float(-5),
	})

	assert.Equal(t, map[models.SoilParameter]string{
		models.ParamPH:            "pH should be between 0 and 14",
		models.ParamNitrogen:      "Value cannot be negative",
		models.ParamPhosphorus:    "Phosphorus should be between 0 and 200",
		models.ParamOrganicMatter: "Percentage should be between 0 and 100",
		models.ParamSoilMoisture:  "Percentage should be between 0 and 100",
	}, problems)
}

func TestValidateSoilFields_DoesNotBlockAnalysis(t *testing.T) {
	sample := models.SoilSample{PHLevel: models.Float(20)}

	assert.Len(t, ValidateSoilFields(sample), 1)
	report := AnalyzeSoil(sample)
	require.Len(t, report.Results, 1)
	assert.Equal(t, models.StatusPoor, report.Results[0].Status)
}
