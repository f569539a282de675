package filter

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnMap 字段名到数据库列名的白名单映射, 不在映射中的字段被忽略.
type ColumnMap map[string]string

// ApplyCriteria 把激活条件翻译成 gorm Where 子句.
// 列表值用 IN, 单值用等值匹配; 空值条件跳过.
func ApplyCriteria(tx *gorm.DB, criteria []Criterion, columns ColumnMap) *gorm.DB {
	for _, cr := range criteria {
		col, ok := columns[cr.Field]
		if !ok || cr.Value.IsZero() {
			continue
		}

		if cr.Value.IsList() {
			tx = tx.Where(fmt.Sprintf("%s IN ?", col), cr.Value.Strings())
		} else {
			tx = tx.Where(fmt.Sprintf("%s = ?", col), cr.Value.String())
		}
	}

	return tx
}

// ApplySearch 把搜索串翻译成对若干列的 LIKE 匹配 (OR 连接).
func ApplySearch(tx *gorm.DB, search string, columns []string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return tx
	}

	pattern := "%" + search + "%"
	conds := make([]string, len(columns))
	args := make([]any, len(columns))

	for i, col := range columns {
		conds[i] = col + " LIKE ?"
		args[i] = pattern
	}

	return tx.Where(strings.Join(conds, " OR "), args...)
}

// ApplySort 按排序序列依次追加 Order 子句, 不在白名单中的字段忽略.
func ApplySort(tx *gorm.DB, sort []SortCriterion, columns ColumnMap) *gorm.DB {
	for _, sc := range sort {
		col, ok := columns[sc.Field]
		if !ok {
			continue
		}

		dir := "ASC"
		if sc.Direction == DirectionDescending {
			dir = "DESC"
		}

		tx = tx.Order(col + " " + dir)
	}

	return tx
}
