package preview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildCSV(rows int) string {
	var b strings.Builder
	for i := range rows {
		fmt.Fprintf(&b, "row-%d,value-%d\n", i, i)
	}

	return b.String()
}

func TestParseCSV_Window(t *testing.T) {
	w, err := ParseCSV(strings.NewReader(buildCSV(1500)))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if len(w.Rows) != MaxSheetRows {
		t.Fatalf("len(Rows) = %d, want %d", len(w.Rows), MaxSheetRows)
	}

	if w.TotalRows != 1500 || !w.Truncated {
		t.Fatalf("TotalRows = %d Truncated = %v, want 1500/true", w.TotalRows, w.Truncated)
	}

	if w.Notice != "1000 of 1500" {
		t.Fatalf("Notice = %q, want %q", w.Notice, "1000 of 1500")
	}

	if w.Rows[0][0] != "row-0" || w.Rows[999][0] != "row-999" {
		t.Fatalf("窗口内容错位: first=%v last=%v", w.Rows[0], w.Rows[999])
	}
}

func TestParseCSV_SmallNoNotice(t *testing.T) {
	w, err := ParseCSV(strings.NewReader(buildCSV(50)))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if len(w.Rows) != 50 || w.TotalRows != 50 {
		t.Fatalf("len(Rows) = %d TotalRows = %d, want 50/50", len(w.Rows), w.TotalRows)
	}

	if w.Truncated || w.Notice != "" {
		t.Fatalf("50 行不应截断: Truncated=%v Notice=%q", w.Truncated, w.Notice)
	}
}

func TestParseCSV_RaggedRowsPadded(t *testing.T) {
	raw := "a,b,c\nd\ne,f\n"

	w, err := ParseCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	for i, row := range w.Rows {
		if len(row) != 3 {
			t.Fatalf("第 %d 行宽度 = %d, want 3", i, len(row))
		}
	}

	// 缺失单元格是空字符串
	if w.Rows[1][1] != "" || w.Rows[1][2] != "" {
		t.Fatalf("补齐的单元格应为空字符串: %v", w.Rows[1])
	}
}

func TestParseWorkbook_FirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()

	// 默认 Sheet1, 再加一个不该被读到的工作表
	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	if err := f.SetCellValue("Sheet1", "A1", "name"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	if err := f.SetCellValue("Sheet1", "B1", "seats"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	if err := f.SetCellValue("Sheet1", "A2", "main-stage"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	if err := f.SetCellValue("Sheet2", "A1", "should-not-appear"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	w, err := ParseWorkbook(buf)
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}

	if w.SheetName != "Sheet1" {
		t.Fatalf("SheetName = %q, want Sheet1", w.SheetName)
	}

	if w.TotalRows != 2 || w.Truncated {
		t.Fatalf("TotalRows = %d Truncated = %v, want 2/false", w.TotalRows, w.Truncated)
	}

	if w.Rows[0][0] != "name" || w.Rows[1][0] != "main-stage" {
		t.Fatalf("窗口内容: %v", w.Rows)
	}

	for _, row := range w.Rows {
		for _, cell := range row {
			if cell == "should-not-appear" {
				t.Fatalf("读到了第二个工作表的内容")
			}
		}
	}
}

func TestParseWorkbook_InvalidData(t *testing.T) {
	if _, err := ParseWorkbook(strings.NewReader("definitely not a zip")); err == nil {
		t.Fatalf("非法工作簿应返回错误")
	}
}

func BenchmarkParseCSV(b *testing.B) {
	raw := buildCSV(1500)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := ParseCSV(strings.NewReader(raw)); err != nil {
			b.Fatal(err)
		}
	}
}
