package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"go-krushivishwa/models"
	"go-krushivishwa/utils"
)

// 导出格式
const (
	ExportJSON = "json"
	ExportCSV  = "csv"
)

// ExportFile 导出结果
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

var exportLabels = map[models.SoilParameter]string{
	models.ParamPH:            "pH Level",
	models.ParamNitrogen:      "Nitrogen (N)",
	models.ParamPhosphorus:    "Phosphorus (P)",
	models.ParamPotassium:     "Potassium (K)",
	models.ParamOrganicMatter: "Organic Matter",
	models.ParamSoilMoisture:  "Soil Moisture",
}

// ParameterLabel 指标展示名称
func ParameterLabel(p models.SoilParameter) string {
	if label, ok := exportLabels[p]; ok {
		return label
	}
	return string(p)
}

// ExportReport 按格式导出分析报告
func ExportReport(report models.AnalysisReport, format, reportID string, at time.Time) (*ExportFile, error) {
	switch format {
	case ExportJSON:
		body, err := json.MarshalIndent(models.SoilExport{
			Timestamp:    at.UTC().Format(time.RFC3339Nano),
			SoilAnalysis: report,
			ExportFormat: format,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return &ExportFile{
			Name:        utils.ExportFileName("soil-analysis", reportID, ExportJSON),
			ContentType: "application/json",
			Body:        body,
		}, nil

	case ExportCSV:
		body, err := reportCSV(report)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        utils.ExportFileName("soil-analysis", reportID, ExportCSV),
			ContentType: "text/csv",
			Body:        body,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
}

func reportCSV(report models.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Parameter", "Value", "Status", "Label"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range report.Results {
		row := []string{ParameterLabel(r.Parameter), r.DisplayValue, string(r.Status), r.Label}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
