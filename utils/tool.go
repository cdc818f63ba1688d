package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gonanoid "github.com/matoous/go-nanoid"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ReportIDLength 报告编号长度
const ReportIDLength = 12

// GenerateReportID 生成报告编号
func GenerateReportID() (string, error) {
	return gonanoid.Generate(idAlphabet, ReportIDLength)
}

// ValidateReportID 验证报告编号格式
func ValidateReportID(id string) bool {
	if len(id) != ReportIDLength {
		return false
	}
	for _, char := range id {
		if !strings.ContainsRune(idAlphabet, char) {
			return false
		}
	}
	return true
}

// ExportFileName 生成导出文件名，如 soil-analysis-<id>.csv
func ExportFileName(prefix, id, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, id, ext)
}

// ParseOptionalFloat 解析表单数值，空串、带单位等非纯数字、NaN/Inf 一律视为未填写
func ParseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
