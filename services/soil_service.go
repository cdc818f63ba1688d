package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"go-krushivishwa/models"
	"go-krushivishwa/store"
	"go-krushivishwa/utils"
)

// SoilService 土壤分析流程：解析表单、评分、保存最近一次输入
type SoilService struct {
	store  store.Store
	reader *ReportReader
	logger *zap.Logger
	now    func() time.Time
}

// NewSoilService 创建土壤分析服务
func NewSoilService(st store.Store, reader *ReportReader, logger *zap.Logger) *SoilService {
	return &SoilService{
		store:  st,
		reader: reader,
		logger: logger,
		now:    time.Now,
	}
}

// Analyze 分析一次表单提交，并覆盖该用户上一次保存的输入
func (s *SoilService) Analyze(ctx context.Context, username string, form models.SoilForm) (*models.AnalyzeResponse, error) {
	sample, err := ParseSoilForm(form)
	if err != nil {
		return nil, err
	}

	reportID, err := utils.GenerateReportID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report id: %w", err)
	}

	resp := &models.AnalyzeResponse{
		ReportID: reportID,
		Report:   AnalyzeSoil(sample),
	}
	if problems := ValidateSoilFields(sample); len(problems) > 0 {
		resp.FieldErrors = problems
	}

	if err := s.saveLast(ctx, username, sample); err != nil {
		// 保存失败不影响分析结果
		s.logger.Warn("failed to save last soil sample", zap.String("username", username), zap.Error(err))
	}

	s.logger.Info("soil analysis completed",
		zap.String("username", username),
		zap.String("reportId", reportID),
		zap.Int("results", len(resp.Report.Results)),
		zap.Int("recommendations", len(resp.Report.Recommendations)),
	)
	return resp, nil
}

// Export 重新计算报告并导出为文件
//
// reportID 沿用分析时返回的编号，为空或格式不对时重新生成。
func (s *SoilService) Export(form models.SoilForm, format, reportID string) (*ExportFile, error) {
	sample, err := ParseSoilForm(form)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateReportID(reportID) {
		if reportID, err = utils.GenerateReportID(); err != nil {
			return nil, fmt.Errorf("failed to generate report id: %w", err)
		}
	}
	return ExportReport(AnalyzeSoil(sample), format, reportID, s.now())
}

// ReadReport 读取化验单图片
func (s *SoilService) ReadReport(ctx context.Context, src io.Reader) (models.SoilSample, error) {
	return s.reader.Read(ctx, src)
}

// MaxReportBytes 化验单大小上限
func (s *SoilService) MaxReportBytes() int64 {
	return s.reader.MaxBytes()
}

// LastSample 返回用户最近一次提交的数据，没有时返回 store.ErrNotFound
func (s *SoilService) LastSample(ctx context.Context, username string) (models.SoilSample, error) {
	raw, err := s.store.Get(ctx, store.LastSoilKey(username))
	if err != nil {
		return models.SoilSample{}, err
	}

	var sample models.SoilSample
	if err := json.Unmarshal([]byte(raw), &sample); err != nil {
		return models.SoilSample{}, fmt.Errorf("failed to decode saved sample: %w", err)
	}
	return sample, nil
}

func (s *SoilService) saveLast(ctx context.Context, username string, sample models.SoilSample) error {
	if username == "" {
		return errors.New("missing username")
	}
	raw, err := json.Marshal(sample)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, store.LastSoilKey(username), string(raw), 0)
}
