// Package types 定义应用程序中使用的各种数据类型和结构体. 主要为 Request 和 Response 结构体.
package types

import (
	"github.com/yeisme/stagevault/pkg/internal/filter"
)

// FilterQuery 搜索端点的通用过滤条件载荷:
// 激活条件 + 自由文本搜索 + 排序序列, 与列表页的过滤控制器状态同构.
type FilterQuery struct {
	Criteria []filter.Criterion     `json:"criteria,omitempty"`
	Search   string                 `json:"search,omitempty"`
	Sort     []filter.SortCriterion `json:"sort,omitempty"`
}

// Pagination 分页参数，Page 从 1 开始.
type Pagination struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// Normalize 约束分页参数到合法范围.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}

	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// Offset 返回 SQL offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
