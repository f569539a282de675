package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/stagevault/pkg/internal/handle"
)

// RegisterStatsRoutes 注册统计相关路由, 全部为只读聚合.
func RegisterStatsRoutes(g *gin.RouterGroup, opts Options) {
	statsRoutes := g.Group("/stats")
	{
		statsRoutes.GET("/inventory", cached(opts.ResponseCache, handle.StatsInventory)...)
		statsRoutes.GET("/documents", cached(opts.ResponseCache, handle.StatsDocuments)...)
		statsRoutes.GET("/trend", cached(opts.ResponseCache, handle.StatsUploadTrend)...)
		statsRoutes.GET("/schedule", cached(opts.ResponseCache, handle.StatsSchedule)...)
	}
}
