package services

import (
	"math"
	"strconv"

	"go-krushivishwa/models"
)

// AnalyzeSoil 根据阈值表评估土壤样本并生成施肥建议
//
// 纯函数：未填写、NaN 或无穷大的指标直接跳过，超出常规范围的数值归入"差"而不报错。
// 结果与建议都按 pH、氮、磷、钾、有机质、含水量的顺序输出。
func AnalyzeSoil(sample models.SoilSample) models.AnalysisReport {
	report := models.AnalysisReport{
		Results:         make([]models.ParameterResult, 0, len(soilRules)),
		Recommendations: []string{},
	}

	for _, rule := range soilRules {
		v := sample.Value(rule.param)
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}

		status, side := rule.classify(*v)
		report.Results = append(report.Results, models.ParameterResult{
			Parameter:    rule.param,
			DisplayValue: formatReading(*v) + rule.unit,
			Status:       status,
			Label:        rule.labels[status],
		})

		if status == models.StatusGood {
			continue
		}
		if msg, ok := rule.recommendation(status, side); ok {
			report.Recommendations = append(report.Recommendations, msg)
		}
	}

	return report
}

// formatReading 最短还原表示，如 6.8、50、2.5；-0 输出为 0
func formatReading(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
