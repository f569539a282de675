package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/log"
)

// StatsInventory 库存统计: 总量/低库存/分类/状态分布.
//
//	@Summary	库存统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	map[string]any	"库存统计"
//	@Router		/api/v1/stats/inventory [get]
func StatsInventory(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewStatsService(c.Request.Context())
	ctx := c.Request.Context()

	summary, err := svc.InventorySummary(ctx, user)
	if err != nil {
		log.Logger().Error().Err(err).Msg("inventory summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	byCategory, err := svc.InventoryByCategory(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byStatus, err := svc.InventoryByStatus(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":     summary,
		"by_category": byCategory,
		"by_status":   byStatus,
	})
}

// StatsDocuments 文档统计: 总量/类型/大小分桶.
//
//	@Summary	文档统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	map[string]any	"文档统计"
//	@Router		/api/v1/stats/documents [get]
func StatsDocuments(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewStatsService(c.Request.Context())
	ctx := c.Request.Context()

	summary, err := svc.DocumentsSummary(ctx, user)
	if err != nil {
		log.Logger().Error().Err(err).Msg("documents summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	byType, err := svc.DocumentsByType(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bySize, err := svc.DocumentsBySizeBuckets(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"by_type": byType,
		"by_size": bySize,
	})
}

// StatsUploadTrend 文档上传趋势 (按日).
//
//	@Summary	上传趋势
//	@Tags		统计
//	@Produce	json
//	@Param		days	query		int				false	"统计天数 (默认 30, 最大 60)"
//	@Success	200		{object}	map[string]any	"趋势数据"
//	@Router		/api/v1/stats/trend [get]
func StatsUploadTrend(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	svc := service.NewStatsService(c.Request.Context())

	trend, err := svc.UploadTrend(c.Request.Context(), user, days)
	if err != nil {
		log.Logger().Error().Err(err).Msg("upload trend failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// StatsSchedule 排期统计: 按事件类型聚合.
//
//	@Summary	排期统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	map[string]any	"排期统计"
//	@Router		/api/v1/stats/schedule [get]
func StatsSchedule(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewStatsService(c.Request.Context())

	byKind, err := svc.ScheduleByKind(c.Request.Context(), user)
	if err != nil {
		log.Logger().Error().Err(err).Msg("schedule stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"by_kind": byKind})
}
