package services

import (
	"fmt"

	"go-krushivishwa/models"
	"go-krushivishwa/utils"
)

// ParseSoilForm 将表单字符串转换为样本，无法解析的字段视为未填写
func ParseSoilForm(form models.SoilForm) (models.SoilSample, error) {
	sample := models.SoilSample{
		PHLevel:       utils.ParseOptionalFloat(string(form.PHLevel)),
		Nitrogen:      utils.ParseOptionalFloat(string(form.Nitrogen)),
		Phosphorus:    utils.ParseOptionalFloat(string(form.Phosphorus)),
		Potassium:     utils.ParseOptionalFloat(string(form.Potassium)),
		OrganicMatter: utils.ParseOptionalFloat(string(form.OrganicMatter)),
		SoilMoisture:  utils.ParseOptionalFloat(string(form.SoilMoisture)),
	}

	if sample.IsEmpty() {
		return sample, ErrEmptySample
	}
	return sample, nil
}

type fieldRange struct {
	param models.SoilParameter
	name  string
	min   float64
	max   float64
}

// soilFieldRanges 表单实时校验范围，与评分阈值无关
var soilFieldRanges = []fieldRange{
	{models.ParamPH, "pH Level", 0, 14},
	{models.ParamNitrogen, "Nitrogen", 0, 500},
	{models.ParamPhosphorus, "Phosphorus", 0, 200},
	{models.ParamPotassium, "Potassium", 0, 1000},
	{models.ParamOrganicMatter, "Organic Matter", 0, 100},
	{models.ParamSoilMoisture, "Soil Moisture", 0, 100},
}

func (r fieldRange) check(v float64) (string, bool) {
	if v >= r.min && v <= r.max {
		return "", true
	}

	switch r.param {
	case models.ParamPH:
		return "pH should be between 0 and 14", false
	case models.ParamNitrogen, models.ParamPhosphorus, models.ParamPotassium:
		if v < 0 {
			return "Value cannot be negative", false
		}
	case models.ParamOrganicMatter, models.ParamSoilMoisture:
		return "Percentage should be between 0 and 100", false
	}
	return fmt.Sprintf("%s should be between %s and %s", r.name, formatReading(r.min), formatReading(r.max)), false
}

// ValidateSoilFields 返回超出常规范围的字段提示，不影响评分
func ValidateSoilFields(sample models.SoilSample) map[models.SoilParameter]string {
	problems := make(map[models.SoilParameter]string)
	for _, r := range soilFieldRanges {
		v := sample.Value(r.param)
		if v == nil {
			continue
		}
		if msg, ok := r.check(*v); !ok {
			problems[r.param] = msg
		}
	}
	return problems
}
