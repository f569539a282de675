// Package preview 提供文档预览的类型分发与表格窗口策略.
//
// Classify 把文档声明的 content-type 映射到封闭的查看器种类枚举,
// 由调用方据此选择渲染协作者; 未识别的类型归入 unsupported, 永不报错.
package preview

import "strings"

// ViewerKind 查看器种类, 封闭枚举.
type ViewerKind string

const (
	ViewerPDF            ViewerKind = "pdf"
	ViewerWordConversion ViewerKind = "wordConversion"
	ViewerSpreadsheet    ViewerKind = "spreadsheet"
	ViewerAudio          ViewerKind = "audio"
	ViewerVideo          ViewerKind = "video"
	ViewerImage          ViewerKind = "image"
	ViewerUnsupported    ViewerKind = "unsupported"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDoc  = "application/msword"
	mimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXls  = "application/vnd.ms-excel"
	mimeCSV  = "text/csv"
)

// wordTypes 命中后走 Word 转 PDF 预览; 转换不可用时调用方降级为仅下载.
var wordTypes = map[string]struct{}{
	mimeDocx: {},
	mimeDoc:  {},
}

var spreadsheetTypes = map[string]struct{}{
	mimeXlsx: {},
	mimeXls:  {},
	mimeCSV:  {},
}

// Classify 按优先级把 content-type 映射到查看器种类, 首个命中生效:
// pdf 精确匹配 → word 集合 → 表格集合 → audio/video/image 前缀 → unsupported.
// 对任意输入 (含空串) 都是全函数, 无副作用.
func Classify(contentType string) ViewerKind {
	ct := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case ct == mimePDF:
		return ViewerPDF
	case inSet(wordTypes, ct):
		return ViewerWordConversion
	case inSet(spreadsheetTypes, ct):
		return ViewerSpreadsheet
	case strings.HasPrefix(ct, "audio/"):
		return ViewerAudio
	case strings.HasPrefix(ct, "video/"):
		return ViewerVideo
	case strings.HasPrefix(ct, "image/"):
		return ViewerImage
	default:
		return ViewerUnsupported
	}
}

func inSet(set map[string]struct{}, ct string) bool {
	_, ok := set[ct]
	return ok
}

// IsSpreadsheetCSV 报告该类型是否按 CSV 解析 (其余表格类型走 xlsx 解析).
func IsSpreadsheetCSV(contentType string) bool {
	return strings.ToLower(strings.TrimSpace(contentType)) == mimeCSV
}
