package preview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// MaxSheetRows 表格预览的行窗口上限, 超出部分截断并附带说明.
const MaxSheetRows = 1000

// SheetWindow 表格预览的有界行窗口: 只取工作簿的第一个工作表,
// 最多前 MaxSheetRows 行; 空单元格渲染为空字符串.
type SheetWindow struct {
	SheetName string     `json:"sheet_name,omitempty"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
	Truncated bool       `json:"truncated"`
	// Notice 截断说明, 形如 "1000 of 1500"; 未截断时为空
	Notice string `json:"notice,omitempty"`
}

// ParseWorkbook 解析 xlsx/xls 工作簿为行窗口. 流式读取第一个工作表,
// 统计总行数但只保留窗口内的行.
func ParseWorkbook(r io.Reader) (*SheetWindow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("解析工作簿失败: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("工作簿没有工作表")
	}

	sheet := sheets[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	defer func() { _ = rows.Close() }()

	window := make([][]string, 0, 64)
	total := 0

	for rows.Next() {
		total++
		if total > MaxSheetRows {
			continue // 只计数, 不再保留
		}

		cols, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("读取第 %d 行失败: %w", total, err)
		}

		window = append(window, cols)
	}

	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("遍历工作表失败: %w", err)
	}

	return buildWindow(sheet, window, total), nil
}

// ParseCSV 解析 CSV 为行窗口, 允许不等长的行.
func ParseCSV(r io.Reader) (*SheetWindow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	window := make([][]string, 0, 64)
	total := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("解析 CSV 失败: %w", err)
		}

		total++
		if total > MaxSheetRows {
			continue
		}

		window = append(window, record)
	}

	return buildWindow("", window, total), nil
}

// buildWindow 把行补齐为矩形并生成截断说明.
func buildWindow(sheet string, rows [][]string, total int) *SheetWindow {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded // 缺失单元格补空字符串
		}
	}

	w := &SheetWindow{
		SheetName: sheet,
		Rows:      rows,
		TotalRows: total,
		Truncated: total > MaxSheetRows,
	}

	if w.Truncated {
		w.Notice = fmt.Sprintf("%d of %d", len(rows), total)
	}

	return w
}
