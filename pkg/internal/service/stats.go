package service

import (
	"context"
	"time"

	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/types"
)

// StatsService 运营统计（基于 DB 聚合）.
type StatsService struct{ *DocumentService }

func NewStatsService(c context.Context) *StatsService { return &StatsService{NewDocumentService(c)} }

const (
	hoursPerDay      = 24
	defaultTrendDays = 30
	maxTrendDays     = 60
	oneMB            = 1 << 20
	tenMB            = 10 << 20
	hundredMB        = 100 << 20
)

// InventorySummary 库存总量与低库存条目数.
func (s *StatsService) InventorySummary(ctx context.Context, tenant string) (types.StatsInventorySummary, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var agg struct {
		Cnt      int64 `gorm:"column:cnt"`
		Quantity int64 `gorm:"column:quantity"`
		LowStock int64 `gorm:"column:low_stock"`
	}

	// COALESCE 避免空表返回 NULL
	selectExpr := "COUNT(*) as cnt, COALESCE(SUM(quantity),0) as quantity, " +
		"COALESCE(SUM(CASE WHEN min_quantity > 0 AND quantity < min_quantity THEN 1 ELSE 0 END),0) as low_stock"

	if err := dbx.Model(&model.InventoryItem{}).
		Select(selectExpr).
		Where("tenant = ?", tenant).
		Scan(&agg).Error; err != nil {
		return types.StatsInventorySummary{}, err
	}

	return types.StatsInventorySummary{
		TotalItems:    int(agg.Cnt),
		TotalQuantity: int(agg.Quantity),
		LowStockItems: int(agg.LowStock),
	}, nil
}

// InventoryByCategory 按分类聚合库存.
func (s *StatsService) InventoryByCategory(ctx context.Context, tenant string) ([]types.StatsCategoryItem, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		Category string
		Cnt      int64
		Quantity int64
	}{}
	if err := dbx.Model(&model.InventoryItem{}).
		Select("COALESCE(NULLIF(category,''),'uncategorized') as category, COUNT(*) as cnt, COALESCE(SUM(quantity),0) as quantity").
		Where("tenant = ?", tenant).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.StatsCategoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.StatsCategoryItem{Category: r.Category, Count: int(r.Cnt), Quantity: int(r.Quantity)})
	}

	return out, nil
}

// InventoryByStatus 按状态聚合库存.
func (s *StatsService) InventoryByStatus(ctx context.Context, tenant string) ([]types.StatsStatusItem, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		Status string
		Cnt    int64
	}{}
	if err := dbx.Model(&model.InventoryItem{}).
		Select("COALESCE(NULLIF(status,''),'unknown') as status, COUNT(*) as cnt").
		Where("tenant = ?", tenant).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.StatsStatusItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.StatsStatusItem{Status: r.Status, Count: int(r.Cnt)})
	}

	return out, nil
}

// DocumentsSummary 统计活跃/回收文档数量与总大小.
func (s *StatsService) DocumentsSummary(ctx context.Context, tenant string) (types.StatsDocumentSummary, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var agg struct {
		ActiveCount  int64 `gorm:"column:active_count"`
		TrashedCount int64 `gorm:"column:trashed_count"`
		TotalSize    int64 `gorm:"column:total_size"`
	}

	selectExpr :=
		"COALESCE(SUM(CASE WHEN deleted_at IS NULL THEN 1 ELSE 0 END),0) AS active_count, " +
			"COALESCE(SUM(CASE WHEN deleted_at IS NOT NULL THEN 1 ELSE 0 END),0) AS trashed_count, " +
			"COALESCE(SUM(size),0) AS total_size"

	if err := dbx.Model(&model.Document{}).
		Unscoped(). // 包含软删除数据
		Select(selectExpr).
		Where("tenant = ?", tenant).
		Scan(&agg).Error; err != nil {
		return types.StatsDocumentSummary{}, err
	}

	return types.StatsDocumentSummary{
		TotalDocuments:   int(agg.ActiveCount + agg.TrashedCount),
		TrashedDocuments: int(agg.TrashedCount),
		TotalSize:        agg.TotalSize,
	}, nil
}

// DocumentsByType 按 content_type 一级类型（如 image、application）聚合.
func (s *StatsService) DocumentsByType(ctx context.Context, tenant string) ([]types.StatsTypeItem, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		CT  string
		Cnt int64
		Sum int64
	}{}
	// SQLite/MySQL 兼容：取 content_type 的前缀（到 '/' 之前），为空归类 unknown
	err := dbx.Model(&model.Document{}).
		Select("CASE WHEN content_type LIKE '%/%' THEN "+
			"SUBSTR(content_type,1,INSTR(content_type,'/')-1) "+
			"ELSE COALESCE(NULLIF(content_type,''),'unknown') END as ct, "+
			"COUNT(*) as cnt, COALESCE(SUM(size),0) as sum").
		Where("tenant = ?", tenant).
		Group("ct").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]types.StatsTypeItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.StatsTypeItem{Type: r.CT, Count: int(r.Cnt), Size: r.Sum})
	}

	return out, nil
}

// DocumentsBySizeBuckets 按大小分桶.
func (s *StatsService) DocumentsBySizeBuckets(ctx context.Context, tenant string) ([]types.StatsSizeBucket, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	buckets := []types.StatsSizeBucket{
		{Name: "0-1MB", Min: 0, Max: oneMB},
		{Name: "1-10MB", Min: oneMB, Max: tenMB},
		{Name: "10-100MB", Min: tenMB, Max: hundredMB},
		{Name: ">=100MB", Min: hundredMB, Max: -1},
	}

	for i := range buckets {
		q := dbx.Model(&model.Document{}).Where("tenant = ? AND size >= ?", tenant, buckets[i].Min)
		if buckets[i].Max > 0 {
			q = q.Where("size < ?", buckets[i].Max)
		}

		var (
			cnt int64
			sum struct{ Sum int64 }
		)

		if err := q.Count(&cnt).Error; err != nil {
			return nil, err
		}

		if err := q.Select("COALESCE(SUM(size),0) as sum").Scan(&sum).Error; err != nil {
			return nil, err
		}

		buckets[i].Count = int(cnt)
		buckets[i].Size = sum.Sum
	}

	return buckets, nil
}

// UploadTrend 按天统计文档上传趋势（最近 N 天，缺失日补零）.
func (s *StatsService) UploadTrend(ctx context.Context, tenant string, days int) ([]types.StatsTrendPoint, error) {
	if days <= 0 || days > maxTrendDays {
		days = defaultTrendDays
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	start := time.Now().UTC().AddDate(0, 0, -days+1).Truncate(hoursPerDay * time.Hour)
	rows := []struct {
		D   string
		Cnt int64
		Sum int64
	}{}
	if err := dbx.Model(&model.Document{}).
		Select("DATE(last_modified) as d, COUNT(*) as cnt, COALESCE(SUM(size),0) as sum").
		Where("tenant = ? AND last_modified >= ?", tenant, start).
		Group("DATE(last_modified)").
		Order("d").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	data := make(map[string]struct {
		C int64
		S int64
	})
	for _, r := range rows {
		data[r.D] = struct{ C, S int64 }{r.Cnt, r.Sum}
	}

	out := make([]types.StatsTrendPoint, 0, days)

	for i := range days {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		if v, ok := data[d]; ok {
			out = append(out, types.StatsTrendPoint{Date: d, Count: int(v.C), Size: v.S})
		} else {
			out = append(out, types.StatsTrendPoint{Date: d})
		}
	}

	return out, nil
}

// ScheduleByKind 按事件类型聚合排期.
func (s *StatsService) ScheduleByKind(ctx context.Context, tenant string) ([]types.StatsScheduleItem, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		Kind string
		Cnt  int64
	}{}
	if err := dbx.Model(&model.ScheduleEvent{}).
		Select("kind, COUNT(*) as cnt").
		Where("tenant = ?", tenant).
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.StatsScheduleItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.StatsScheduleItem{Kind: r.Kind, Count: int(r.Cnt)})
	}

	return out, nil
}
