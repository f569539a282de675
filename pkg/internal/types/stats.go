package types

// StatsInventorySummary 库存总体统计（当前租户）.
type StatsInventorySummary struct {
	TotalItems    int `json:"total_items"`
	TotalQuantity int `json:"total_quantity"`
	LowStockItems int `json:"low_stock_items"`
}

// StatsCategoryItem 按分类聚合.
type StatsCategoryItem struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Quantity int    `json:"quantity"`
}

// StatsStatusItem 按状态聚合.
type StatsStatusItem struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatsDocumentSummary 文档总体统计.
type StatsDocumentSummary struct {
	TotalDocuments   int   `json:"total_documents"`
	TrashedDocuments int   `json:"trashed_documents"`
	TotalSize        int64 `json:"total_size"`
}

// StatsTypeItem 按类型聚合（以 MIME 一级类型或自定义分类为准）.
type StatsTypeItem struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsSizeBucket 单个大小分桶.
type StatsSizeBucket struct {
	Name  string `json:"name"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsTrendPoint 趋势点（按日）.
type StatsTrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsScheduleItem 按事件类型聚合的排期统计.
type StatsScheduleItem struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
