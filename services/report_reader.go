package services

import (
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"go-krushivishwa/models"
)

// DefaultMaxReportBytes 化验单图片大小上限
const DefaultMaxReportBytes int64 = 10 << 20

var allowedReportTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ReportReader 读取土壤化验单图片
//
// 目前不做真正的识别，校验通过后返回固定的样例数据。
type ReportReader struct {
	maxBytes int64
	logger   *zap.Logger
}

// NewReportReader 创建化验单读取器，maxBytes<=0 时使用默认上限
func NewReportReader(maxBytes int64, logger *zap.Logger) *ReportReader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxReportBytes
	}
	return &ReportReader{maxBytes: maxBytes, logger: logger}
}

// MaxBytes 上传大小上限
func (r *ReportReader) MaxBytes() int64 {
	return r.maxBytes
}

// Read 校验图片类型和大小并提取检测值
func (r *ReportReader) Read(ctx context.Context, src io.Reader) (models.SoilSample, error) {
	if err := ctx.Err(); err != nil {
		return models.SoilSample{}, err
	}

	data, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return models.SoilSample{}, fmt.Errorf("failed to read report image: %w", err)
	}
	if int64(len(data)) > r.maxBytes {
		return models.SoilSample{}, ErrReportTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedReportTypes...) {
		r.logger.Debug("rejected report upload", zap.String("mime", mtype.String()), zap.Int("bytes", len(data)))
		return models.SoilSample{}, ErrUnsupportedReportType
	}

	r.logger.Info("report image accepted", zap.String("mime", mtype.String()), zap.Int("bytes", len(data)))
	return mockReportSample(), nil
}

func mockReportSample() models.SoilSample {
	return models.SoilSample{
		PHLevel:       models.Float(6.8),
		Nitrogen:      models.Float(85),
		Phosphorus:    models.Float(22),
		Potassium:     models.Float(165),
		OrganicMatter: models.Float(2.8),
		SoilMoisture:  models.Float(48),
	}
}
