package service

import (
	"context"
	"fmt"

	minio "github.com/minio/minio-go/v7"

	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/preview"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
)

// wordConversionNotice word 文档转 PDF 的后端转换尚未提供, 预览降级为仅下载.
// TODO: 接入文档转换服务后改为返回转换结果的预签名 URL.
const wordConversionNotice = "word 文档在线预览暂不可用，请下载后查看"

// PreviewService 文档预览: 按 content-type 分发查看器并按需解析表格窗口.
type PreviewService struct{ *DocumentService }

func NewPreviewService(c context.Context) *PreviewService {
	return &PreviewService{NewDocumentService(c)}
}

// Preview 构建文档预览响应.
//   - pdf/audio/video/image: 返回预签名 GET URL, 由前端查看器直接加载
//   - spreadsheet: 服务端解析出有界行窗口随响应返回
//   - wordConversion: 转换端点不可用时降级为仅下载 (当前始终如此)
//   - unsupported: 仅下载
func (s *PreviewService) Preview(ctx context.Context, tenant string, id uint) (*types.PreviewResponse, error) {
	doc, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	mode := preview.Classify(doc.ContentType)

	resp := &types.PreviewResponse{
		DocumentID:  doc.ID,
		Mode:        mode,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
	}

	// 除表格外的所有模式都提供原始对象的预签名 URL (下载兜底)
	url, err := s.s3Client.PresignedGetObject(ctx, doc.Bucket, doc.ObjectKey, DefaultPresignedOpTimeout, nil)
	if err != nil {
		return nil, fmt.Errorf("presign get for %s: %w", doc.ObjectKey, err)
	}

	resp.GetURL = url.String()
	resp.ExpiresIn = int(DefaultPresignedOpTimeout.Seconds())

	switch mode {
	case preview.ViewerSpreadsheet:
		sheet, err := s.parseSheet(ctx, doc)
		if err != nil {
			// 解析失败降级为仅下载, 不让预览页面整体失败
			slog.Logger().Warn().Err(err).Str("object_key", doc.ObjectKey).Msg("parse spreadsheet failed")

			resp.DownloadOnly = true
			resp.Notice = "表格解析失败，请下载后查看"
		} else {
			resp.Sheet = sheet
		}
	case preview.ViewerWordConversion:
		resp.DownloadOnly = true
		resp.Notice = wordConversionNotice
	case preview.ViewerUnsupported:
		resp.DownloadOnly = true
	case preview.ViewerPDF, preview.ViewerAudio, preview.ViewerVideo, preview.ViewerImage:
		// 前端查看器直接加载 GetURL
	}

	s.publishAccessed(doc, "preview", string(mode), tenant)

	return resp, nil
}

// parseSheet 从对象存储拉取表格并解析出有界行窗口.
func (s *PreviewService) parseSheet(ctx context.Context, doc *model.Document) (*preview.SheetWindow, error) {
	obj, err := s.s3Client.GetObject(ctx, doc.Bucket, doc.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", doc.ObjectKey, err)
	}
	defer func() { _ = obj.Close() }()

	if preview.IsSpreadsheetCSV(doc.ContentType) {
		return preview.ParseCSV(obj)
	}

	return preview.ParseWorkbook(obj)
}
