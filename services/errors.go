package services

import (
	"errors"
	"strings"
)

var (
	ErrEmptySample           = errors.New("Please fill at least one field to analyze soil health")
	ErrUnknownExportFormat   = errors.New("unsupported export format")
	ErrUnsupportedReportType = errors.New("Please upload a valid image file (JPG, PNG, JPEG, WebP)")
	ErrReportTooLarge        = errors.New("report image exceeds upload limit")
	ErrInvalidCredentials    = errors.New("Invalid credentials! Try: demo/demo123 or farmer@krushi.com/password123")
	ErrInvalidToken          = errors.New("Invalid or expired token")
	ErrSessionNotFound       = errors.New("Session expired or logged out")
	ErrUnknownPage           = errors.New("unknown page")
	ErrUnknownLanguage       = errors.New("unknown language")
)

// ValidationError 表单校验失败，Problems 按检查顺序排列
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ". ")
}
