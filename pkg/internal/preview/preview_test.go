package preview

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        ViewerKind
	}{
		{"pdf", "application/pdf", ViewerPDF},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ViewerWordConversion},
		{"doc", "application/msword", ViewerWordConversion},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ViewerSpreadsheet},
		{"xls", "application/vnd.ms-excel", ViewerSpreadsheet},
		{"csv", "text/csv", ViewerSpreadsheet},
		{"audio_ogg", "audio/ogg", ViewerAudio}, // 前缀规则, 不是枚举列表
		{"audio_mpeg", "audio/mpeg", ViewerAudio},
		{"video_mp4", "video/mp4", ViewerVideo},
		{"image_png", "image/png", ViewerImage},
		{"image_svg", "image/svg+xml", ViewerImage},
		{"zip", "application/zip", ViewerUnsupported},
		{"json", "application/json", ViewerUnsupported},
		{"empty", "", ViewerUnsupported},
		{"garbage", "not a mime type at all", ViewerUnsupported},
		{"case_insensitive", "Application/PDF", ViewerPDF},
		{"surrounding_space", "  application/pdf  ", ViewerPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.contentType); got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// word 集合先于表格集合检查; application/msword 不属于 audio/video/image 前缀
	if got := Classify("application/msword"); got != ViewerWordConversion {
		t.Fatalf("msword 应归入 wordConversion, got %s", got)
	}
	// text/csv 是表格而不是 unsupported 的普通文本
	if got := Classify("text/csv"); got != ViewerSpreadsheet {
		t.Fatalf("text/csv 应归入 spreadsheet, got %s", got)
	}

	if got := Classify("text/plain"); got != ViewerUnsupported {
		t.Fatalf("text/plain 应归入 unsupported, got %s", got)
	}
}

func TestIsSpreadsheetCSV(t *testing.T) {
	if !IsSpreadsheetCSV("text/csv") {
		t.Fatalf("text/csv 应按 CSV 解析")
	}

	if IsSpreadsheetCSV("application/vnd.ms-excel") {
		t.Fatalf("xls 不应按 CSV 解析")
	}
}

func BenchmarkClassify(b *testing.B) {
	for b.Loop() {
		_ = Classify("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
}
