package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"go-krushivishwa/middleware"
	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/store"
	"go-krushivishwa/utils"
)

// SoilController 处理土壤健康分析相关的请求
type SoilController struct {
	Soil *services.SoilService
}

// NewSoilController 创建一个新的SoilController实例
func NewSoilController(soil *services.SoilService) *SoilController {
	return &SoilController{Soil: soil}
}

// Analyze 分析土壤检测数据
func (c *SoilController) Analyze(ctx *gin.Context) {
	var form models.SoilForm
	if err := ctx.ShouldBind(&form); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Soil.Analyze(ctx.Request.Context(), ctx.GetString(middleware.ContextUsername), form)
	if err != nil {
		if errors.Is(err, services.ErrEmptySample) {
			utils.BadRequest(ctx, err.Error())
			return
		}
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Soil analysis failed")
		return
	}

	utils.SuccessWithMessage(ctx, "Soil analysis completed successfully!", resp)
}

// Export 导出分析结果，format 为 json 或 csv，reportId 可选
func (c *SoilController) Export(ctx *gin.Context) {
	var form models.SoilForm
	if err := ctx.ShouldBind(&form); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	file, err := c.Soil.Export(form, ctx.DefaultQuery("format", services.ExportJSON), ctx.Query("reportId"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptySample), errors.Is(err, services.ErrUnknownExportFormat):
			utils.BadRequest(ctx, err.Error())
		default:
			_ = ctx.Error(err)
			utils.InternalServerError(ctx, "Export failed")
		}
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	ctx.Data(http.StatusOK, file.ContentType, file.Body)
}

// UploadReport 上传化验单图片并返回识别出的检测值
func (c *SoilController) UploadReport(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		utils.BadRequest(ctx, "file is required")
		return
	}
	limit := c.Soil.MaxReportBytes()
	if header.Size > limit {
		utils.RequestEntityTooLarge(ctx, tooLargeMessage(limit))
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	sample, err := c.Soil.ReadReport(ctx.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportTooLarge):
			utils.RequestEntityTooLarge(ctx, tooLargeMessage(limit))
		case errors.Is(err, services.ErrUnsupportedReportType):
			utils.UnsupportedMediaType(ctx, err.Error())
		default:
			_ = ctx.Error(err)
			utils.InternalServerError(ctx, "Failed to read report")
		}
		return
	}

	utils.SuccessWithMessage(ctx, "Soil report photo uploaded successfully!", models.ReportImageResponse{
		Sample: sample,
		Report: services.AnalyzeSoil(sample),
	})
}

// LastSample 获取最近一次提交的检测数据
func (c *SoilController) LastSample(ctx *gin.Context) {
	sample, err := c.Soil.LastSample(ctx.Request.Context(), ctx.GetString(middleware.ContextUsername))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(ctx, "No soil data submitted yet")
			return
		}
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Failed to load soil data")
		return
	}

	utils.Success(ctx, sample)
}

func tooLargeMessage(limit int64) string {
	return "File size should be less than " + humanize.IBytes(uint64(limit))
}
