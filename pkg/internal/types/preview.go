package types

import "github.com/yeisme/stagevault/pkg/internal/preview"

// PreviewResponse 文档预览响应. Mode 决定前端挂载哪种查看器;
// DownloadOnly 为 true 时只提供下载链接 (unsupported 或转换不可用的 word 文档).
type PreviewResponse struct {
	DocumentID   uint               `json:"document_id"`
	Mode         preview.ViewerKind `json:"mode"`
	FileName     string             `json:"file_name"`
	ContentType  string             `json:"content_type,omitempty"`
	GetURL       string             `json:"get_url,omitempty"`
	ExpiresIn    int                `json:"expires_in,omitempty"`
	DownloadOnly bool               `json:"download_only"`
	// Sheet 仅在 Mode 为 spreadsheet 时填充
	Sheet *preview.SheetWindow `json:"sheet,omitempty"`
	// Notice 降级说明, 如 word 转换暂不可用
	Notice string `json:"notice,omitempty"`
}
