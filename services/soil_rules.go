package services

import (
	"math"

	"go-krushivishwa/models"
)

// bandSide 数值落在良好区间的哪一侧
type bandSide int

const (
	sideOK bandSide = iota
	sideLow
	sideHigh
)

type tierKey struct {
	status models.HealthStatus
	side   bandSide
}

// soilRule 单个指标的阈值表
//
// 良好区间为 [goodMin, goodMax]，中等区间为 [mediumMin, goodMin) 和
// (goodMax, mediumMax]，其余为差。只有低侧的指标 goodMax、mediumMax 取 +Inf。
type soilRule struct {
	param     models.SoilParameter
	unit      string
	goodMin   float64
	goodMax   float64
	mediumMin float64
	mediumMax float64
	labels    map[models.HealthStatus]string
	messages  map[tierKey]string
}

var inf = math.Inf(1)

// soilRules 按固定顺序排列
var soilRules = []soilRule{
	{
		param:     models.ParamPH,
		goodMin:   6.0,
		goodMax:   7.5,
		mediumMin: 5.5,
		mediumMax: 8.0,
		labels:    tierLabels("Optimal", "Acceptable", "Needs Attention"),
		messages: map[tierKey]string{
			{models.StatusMedium, sideLow}:  "Consider adding lime to increase soil pH",
			{models.StatusMedium, sideHigh}: "Consider adding organic matter to lower soil pH",
			{models.StatusPoor, sideLow}:    "Soil is too acidic - add lime or wood ash",
			{models.StatusPoor, sideHigh}:   "Soil is too alkaline - add sulfur or organic matter",
		},
	},
	{
		param:     models.ParamNitrogen,
		unit:      " ppm",
		goodMin:   40,
		goodMax:   inf,
		mediumMin: 20,
		mediumMax: inf,
		labels:    tierLabels("Sufficient", "Moderate", "Deficient"),
		messages: lowSideMessages(
			"Apply nitrogen-rich fertilizer or compost",
			"Immediate nitrogen supplementation needed - consider urea or ammonium sulfate",
		),
	},
	{
		param:     models.ParamPhosphorus,
		unit:      " ppm",
		goodMin:   30,
		goodMax:   inf,
		mediumMin: 15,
		mediumMax: inf,
		labels:    tierLabels("Adequate", "Low", "Very Low"),
		messages: lowSideMessages(
			"Apply phosphorus fertilizer like rock phosphate",
			"Urgent phosphorus supplementation needed - use superphosphate fertilizer",
		),
	},
	{
		param:     models.ParamPotassium,
		unit:      " ppm",
		goodMin:   120,
		goodMax:   inf,
		mediumMin: 60,
		mediumMax: inf,
		labels:    tierLabels("Good", "Moderate", "Deficient"),
		messages: lowSideMessages(
			"Apply potassium fertilizer like muriate of potash",
			"Immediate potassium supplementation needed - use potassium sulfate",
		),
	},
	{
		param:     models.ParamOrganicMatter,
		unit:      "%",
		goodMin:   3.0,
		goodMax:   inf,
		mediumMin: 1.5,
		mediumMax: inf,
		labels:    tierLabels("Rich", "Moderate", "Poor"),
		messages: lowSideMessages(
			"Add compost or well-rotted manure to increase organic matter",
			"Urgently increase organic matter - use compost, manure, or green manure crops",
		),
	},
	{
		param:     models.ParamSoilMoisture,
		unit:      "%",
		goodMin:   40,
		goodMax:   60,
		mediumMin: 30,
		mediumMax: 70,
		labels:    tierLabels("Optimal", "Acceptable", "Problematic"),
		messages: map[tierKey]string{
			{models.StatusMedium, sideLow}:  "Consider improving water retention with mulching",
			{models.StatusMedium, sideHigh}: "Improve drainage to prevent waterlogging",
			{models.StatusPoor, sideLow}:    "Improve irrigation and water retention methods",
			{models.StatusPoor, sideHigh}:   "Install proper drainage system to prevent root rot",
		},
	},
}

func tierLabels(good, medium, poor string) map[models.HealthStatus]string {
	return map[models.HealthStatus]string{
		models.StatusGood:   good,
		models.StatusMedium: medium,
		models.StatusPoor:   poor,
	}
}

func lowSideMessages(medium, poor string) map[tierKey]string {
	return map[tierKey]string{
		{models.StatusMedium, sideLow}: medium,
		{models.StatusPoor, sideLow}:   poor,
	}
}

// classify 返回等级以及数值偏离良好区间的方向，边界两端均为闭区间
func (r soilRule) classify(v float64) (models.HealthStatus, bandSide) {
	switch {
	case v >= r.goodMin && v <= r.goodMax:
		return models.StatusGood, sideOK
	case v < r.goodMin:
		if v >= r.mediumMin {
			return models.StatusMedium, sideLow
		}
		return models.StatusPoor, sideLow
	default:
		if v <= r.mediumMax {
			return models.StatusMedium, sideHigh
		}
		return models.StatusPoor, sideHigh
	}
}

func (r soilRule) recommendation(status models.HealthStatus, side bandSide) (string, bool) {
	msg, ok := r.messages[tierKey{status, side}]
	return msg, ok
}
