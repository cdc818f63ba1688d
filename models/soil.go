package models

import "encoding/json"

// SoilParameter 土壤检测指标
type SoilParameter string

const (
	ParamPH            SoilParameter = "pH"
	ParamNitrogen      SoilParameter = "nitrogen"
	ParamPhosphorus    SoilParameter = "phosphorus"
	ParamPotassium     SoilParameter = "potassium"
	ParamOrganicMatter SoilParameter = "organicMatter"
	ParamSoilMoisture  SoilParameter = "soilMoisture"
)

// CanonicalParameters 结果和建议的固定输出顺序
var CanonicalParameters = []SoilParameter{
	ParamPH,
	ParamNitrogen,
	ParamPhosphorus,
	ParamPotassium,
	ParamOrganicMatter,
	ParamSoilMoisture,
}

// HealthStatus 指标等级，仅用于前端样式
type HealthStatus string

const (
	StatusGood   HealthStatus = "good"
	StatusMedium HealthStatus = "medium"
	StatusPoor   HealthStatus = "poor"
)

// SoilSample 一次提交的土壤检测数据，nil 表示未填写（不同于 0）
type SoilSample struct {
	PHLevel       *float64 `json:"phLevel,omitempty"`
	Nitrogen      *float64 `json:"nitrogen,omitempty"`
	Phosphorus    *float64 `json:"phosphorus,omitempty"`
	Potassium     *float64 `json:"potassium,omitempty"`
	OrganicMatter *float64 `json:"organicMatter,omitempty"`
	SoilMoisture  *float64 `json:"soilMoisture,omitempty"`
}

// Value 按指标取值
func (s SoilSample) Value(p SoilParameter) *float64 {
	switch p {
	case ParamPH:
		return s.PHLevel
	case ParamNitrogen:
		return s.Nitrogen
	case ParamPhosphorus:
		return s.Phosphorus
	case ParamPotassium:
		return s.Potassium
	case ParamOrganicMatter:
		return s.OrganicMatter
	case ParamSoilMoisture:
		return s.SoilMoisture
	}
	return nil
}

// Set 按指标写入数值
func (s *SoilSample) Set(p SoilParameter, v float64) {
	switch p {
	case ParamPH:
		s.PHLevel = Float(v)
	case ParamNitrogen:
		s.Nitrogen = Float(v)
	case ParamPhosphorus:
		s.Phosphorus = Float(v)
	case ParamPotassium:
		s.Potassium = Float(v)
	case ParamOrganicMatter:
		s.OrganicMatter = Float(v)
	case ParamSoilMoisture:
		s.SoilMoisture = Float(v)
	}
}

// IsEmpty 没有任何已填写的指标
func (s SoilSample) IsEmpty() bool {
	for _, p := range CanonicalParameters {
		if s.Value(p) != nil {
			return false
		}
	}
	return true
}

// Float 返回指向 v 的指针，方便构造样本
func Float(v float64) *float64 {
	return &v
}

// ParameterResult 单个指标的评估结果
type ParameterResult struct {
	Parameter    SoilParameter `json:"parameter"`
	DisplayValue string        `json:"displayValue"`
	Status       HealthStatus  `json:"status"`
	Label        string        `json:"label"`
}

// AnalysisReport 土壤健康分析报告
type AnalysisReport struct {
	Results         []ParameterResult `json:"results"`
	Recommendations []string          `json:"recommendations"`
}

// FormValue 表单原始数值，JSON 中可以是字符串或数字
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(b)
	return nil
}

// SoilForm 表单原始输入
type SoilForm struct {
	PHLevel       FormValue `json:"phLevel" form:"phLevel"`
	Nitrogen      FormValue `json:"nitrogen" form:"nitrogen"`
	Phosphorus    FormValue `json:"phosphorus" form:"phosphorus"`
	Potassium     FormValue `json:"potassium" form:"potassium"`
	OrganicMatter FormValue `json:"organicMatter" form:"organicMatter"`
	SoilMoisture  FormValue `json:"soilMoisture" form:"soilMoisture"`
}

// ReportImageResponse 化验单识别结果
type ReportImageResponse struct {
	Sample SoilSample     `json:"sample"`
	Report AnalysisReport `json:"report"`
}

// AnalyzeResponse 分析接口返回
type AnalyzeResponse struct {
	ReportID    string                   `json:"reportId"`
	Report      AnalysisReport           `json:"report"`
	FieldErrors map[SoilParameter]string `json:"fieldErrors,omitempty"`
}

// SoilExport 导出文档
type SoilExport struct {
	Timestamp    string         `json:"timestamp"`
	SoilAnalysis AnalysisReport `json:"soilAnalysis"`
	ExportFormat string         `json:"exportFormat"`
}
