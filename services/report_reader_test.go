package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
)

func TestReportReader_AcceptsImages(t *testing.T) {
	reader := NewReportReader(0, zap.NewNop())

	for name, data := range map[string][]byte{"png": pngHeader, "jpeg": jpegHeader} {
		t.Run(name, func(t *testing.T) {
			sample, err := reader.Read(context.Background(), bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, mockReportSample(), sample)
		})
	}
}

func TestReportReader_RejectsNonImage(t *testing.T) {
	reader := NewReportReader(0, zap.NewNop())

	_, err := reader.Read(context.Background(), bytes.NewReader([]byte("%PDF-1.7\nnot an image")))
	assert.ErrorIs(t, err, ErrUnsupportedReportType)
}

func TestReportReader_RejectsOversize(t *testing.T) {
	reader := NewReportReader(16, zap.NewNop())

	data := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	_, err := reader.Read(context.Background(), bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrReportTooLarge)
}

func TestReportReader_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxReportBytes, NewReportReader(-1, zap.NewNop()).MaxBytes())
}

func TestMockReportSample_Analysis(t *testing.T) {
	report := AnalyzeSoil(mockReportSample())
	require.Len(t, report.Results, 6)
	assert.Equal(t, []string{
		"Apply phosphorus fertilizer like rock phosphate",
		"Add compost or well-rotted manure to increase organic matter",
	}, report.Recommendations)
}
